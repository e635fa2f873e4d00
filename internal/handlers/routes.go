package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, guests *GuestHandler, hosts *HostHandler, properties *PropertyHandler, bookings *BookingHandler, feedback *FeedbackHandler, reports *ReportHandler, maintenance *MaintenanceHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Marketplace API", "1.0.0")
	api := humachi.New(r, config)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Identity & referral graph
	huma.Post(api, "/guests", guests.HandleCreateGuest)
	huma.Get(api, "/guests/{id}", guests.HandleGetGuest)
	huma.Delete(api, "/guests/{id}", guests.HandleDeleteGuest)
	huma.Post(api, "/guests/{id}/logins", guests.HandleRecordLogin)
	huma.Post(api, "/guests/{id}/notifications", guests.HandleRecordNotification)
	huma.Post(api, "/guests/{id}/social-networks", guests.HandleLinkSocialNetwork)

	huma.Post(api, "/hosts", hosts.HandlePromoteGuest)
	huma.Put(api, "/hosts/{id}/referral", hosts.HandleSetReferral)
	huma.Delete(api, "/hosts/{id}", hosts.HandleDeleteHost)
	huma.Post(api, "/travel-admins", hosts.HandleCreateTravelAdmin)

	// Property graph
	huma.Post(api, "/locations", properties.HandleCreateLocation)
	huma.Delete(api, "/locations/{id}", properties.HandleDeleteLocation)
	huma.Post(api, "/rentals", properties.HandleCreateRental)
	huma.Delete(api, "/rentals/{id}", properties.HandleDeleteRental)
	huma.Post(api, "/rentals/{id}/rooms", properties.HandleAddRoom)
	huma.Post(api, "/rentals/{id}/amenities", properties.HandleAttachAmenity)
	huma.Post(api, "/rentals/{id}/policies", properties.HandleAttachPolicy)
	huma.Post(api, "/rentals/{id}/promotions", properties.HandleCreatePromotion)

	// Booking & financial ledger
	huma.Post(api, "/bookings", bookings.HandleCreateBooking)
	huma.Get(api, "/bookings/{id}", bookings.HandleGetBooking)
	huma.Put(api, "/bookings/{id}/payment-status", bookings.HandleUpdatePaymentStatus)
	huma.Put(api, "/bookings/{id}/cancellation", bookings.HandleCancelBooking)
	huma.Post(api, "/bookings/{id}/transactions", bookings.HandleRecordTransaction)
	huma.Post(api, "/bookings/{id}/reservations", bookings.HandleCreateReservation)

	// Feedback & support
	huma.Post(api, "/bookings/{id}/reviews", feedback.HandleCreateReview)
	huma.Post(api, "/bookings/{id}/tickets", feedback.HandleOpenTicket)
	huma.Put(api, "/tickets/{id}/resolution", feedback.HandleResolveTicket)
	huma.Post(api, "/bookings/{id}/events", feedback.HandleCreateEvent)

	// Reads
	huma.Get(api, "/guests/{id}/statement", reports.HandleGuestStatement)
	huma.Get(api, "/bookings/{id}/ledger", reports.HandleBookingLedger)

	// Maintenance, never runtime traffic
	huma.Post(api, "/maintenance/reset", maintenance.HandleReset)
}
