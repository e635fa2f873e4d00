package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/openstays/marketplace-api/internal/auth"
	"github.com/openstays/marketplace-api/internal/config"
	"github.com/openstays/marketplace-api/internal/database"
	"github.com/openstays/marketplace-api/internal/handlers"
	"github.com/openstays/marketplace-api/internal/notifier"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Handlers
	var ticketNotifier notifier.Notifier
	discordNotifier, err := notifier.NewDiscordNotifier(cfg)
	if err != nil {
		log.Printf("Discord notifier not initialized: %v", err)
	} else {
		ticketNotifier = discordNotifier
	}

	authorizer := auth.NewAuthorizer(cfg)
	guestHandler := handlers.NewGuestHandler(db)
	hostHandler := handlers.NewHostHandler(db)
	propertyHandler := handlers.NewPropertyHandler(db)
	bookingHandler := handlers.NewBookingHandler(db)
	feedbackHandler := handlers.NewFeedbackHandler(db, ticketNotifier)
	reportHandler := handlers.NewReportHandler(db)
	maintenanceHandler := handlers.NewMaintenanceHandler(db, authorizer)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, guestHandler, hostHandler, propertyHandler, bookingHandler, feedbackHandler, reportHandler, maintenanceHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
