package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/openstays/marketplace-api/internal/config"
	"github.com/openstays/marketplace-api/internal/models"
)

type Notifier interface {
	NotifyTicket(guest models.Guest, booking models.Booking, ticket models.CustomerService) error
}

// DiscordNotifier posts new support tickets to an ops channel so the
// support rotation sees them without polling. Optional: the server runs
// fine without it.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(cfg *config.Config) (*DiscordNotifier, error) {
	if cfg.DiscordBotToken == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}
	if cfg.DiscordOpsChannelID == "" {
		return nil, fmt.Errorf("discord ops channel ID is empty")
	}

	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		return nil, err
	}

	return &DiscordNotifier{
		session:   session,
		channelID: cfg.DiscordOpsChannelID,
	}, nil
}

func (n *DiscordNotifier) NotifyTicket(guest models.Guest, booking models.Booking, ticket models.CustomerService) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}

	message := fmt.Sprintf("🎫 **New Support Ticket**\n**Guest:** %s %s (%s)\n**Booking:** #%d (%s - %s)\n**Channel:** %s\n**Issue:** %s",
		guest.FirstName,
		guest.LastName,
		guest.Email,
		booking.ID,
		booking.CheckInDate.Format("2006-01-02"),
		booking.CheckOutDate.Format("2006-01-02"),
		ticket.ContactChannel,
		ticket.Issue,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
