package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port                string `mapstructure:"PORT"`
	DatabasePath        string `mapstructure:"DATABASE_PATH"`
	DiscordBotToken     string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordOpsChannelID string `mapstructure:"DISCORD_OPS_CHANNEL_ID"`
	MaintenanceToken    string `mapstructure:"MAINTENANCE_TOKEN"`
	SeedOnStartup       bool   `mapstructure:"SEED_ON_STARTUP"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "marketplace.db")
	viper.SetDefault("SEED_ON_STARTUP", true)

	viper.BindEnv("PORT")
	viper.BindEnv("DATABASE_PATH")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_OPS_CHANNEL_ID")
	viper.BindEnv("MAINTENANCE_TOKEN")
	viper.BindEnv("SEED_ON_STARTUP")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
