package database

import (
	"fmt"
	"log"

	"github.com/openstays/marketplace-api/internal/config"
	"github.com/openstays/marketplace-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf("%s?_foreign_keys=on", cfg.DatabasePath)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	if cfg.SeedOnStartup {
		if err := Seed(db); err != nil {
			log.Fatalf("Failed to seed catalogs: %v", err)
		}
	}

	return db
}

// tables lists every entity in dependency order, parents first, so that
// AutoMigrate can create foreign keys and Reset can drop leaf-most first.
func tables() []interface{} {
	return []interface{}{
		&models.Guest{},
		&models.TravelAdmin{},
		&models.Host{},
		&models.SocialNetwork{},
		&models.GuestSocialNetwork{},
		&models.LoginHistory{},
		&models.Notification{},
		&models.City{},
		&models.Location{},
		&models.VacationRental{},
		&models.Room{},
		&models.Amenity{},
		&models.VacationRentalAmenity{},
		&models.CancellationPolicy{},
		&models.VacationRentalPolicy{},
		&models.Booking{},
		&models.Transaction{},
		&models.Reservation{},
		&models.Review{},
		&models.CustomerService{},
		&models.Event{},
		&models.Promotion{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(tables()...)
}

// Reset drops every table leaf-most first with foreign-key checking
// suspended, recreates the schema and reloads the baseline catalogs. This
// is a maintenance operation for test and demo harnesses; runtime traffic
// never reaches it.
func Reset(db *gorm.DB) error {
	// The pragma is per-connection; under a pool the OFF may not cover
	// every drop statement. Leaf-first ordering keeps the drops valid on
	// connections still enforcing foreign keys.
	if err := db.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
		return fmt.Errorf("suspend foreign keys: %w", err)
	}
	defer db.Exec("PRAGMA foreign_keys = ON")

	ts := tables()
	for i := len(ts) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(ts[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}

	if err := Migrate(db); err != nil {
		return fmt.Errorf("recreate schema: %w", err)
	}

	return Seed(db)
}
