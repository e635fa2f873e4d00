package handlers

import (
	"context"
	"log"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/openstays/marketplace-api/internal/database"
	"github.com/openstays/marketplace-api/internal/models"
	"github.com/openstays/marketplace-api/internal/notifier"
	"gorm.io/gorm"
)

type FeedbackHandler struct {
	db       *gorm.DB
	notifier notifier.Notifier
}

func NewFeedbackHandler(db *gorm.DB, notifier notifier.Notifier) *FeedbackHandler {
	return &FeedbackHandler{db: db, notifier: notifier}
}

type CreateReviewRequest struct {
	BookingID uint `path:"id"`
	Body      struct {
		ReviewerID   uint                `json:"reviewer_id" required:"true" doc:"Guest identity of the reviewer, for host reviews too"`
		ReviewerType models.ReviewerType `json:"reviewer_type" required:"true" doc:"Guest or Host"`
		Rating       int                 `json:"rating" required:"true" minimum:"1" maximum:"5"`
		Comment      string              `json:"comment"`
	}
}

type CreateReviewResponse struct {
	Body struct {
		ID uint `json:"id"`
	}
}

// HandleCreateReview records post-stay feedback. Host-typed reviews still
// carry the reviewer's guest id; there is no review path keyed to the
// hosts table.
func (h *FeedbackHandler) HandleCreateReview(ctx context.Context, input *CreateReviewRequest) (*CreateReviewResponse, error) {
	if !input.Body.ReviewerType.Valid() {
		return nil, huma.Error422UnprocessableEntity("Invalid reviewer type: " + string(input.Body.ReviewerType))
	}

	var review models.Review
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Booking{}, input.BookingID).Error; err != nil {
			return err
		}
		if err := tx.First(&models.Guest{}, input.Body.ReviewerID).Error; err != nil {
			return huma.Error422UnprocessableEntity("Reviewer guest does not exist")
		}

		review = models.Review{
			BookingID:    input.BookingID,
			ReviewerID:   input.Body.ReviewerID,
			ReviewerType: input.Body.ReviewerType,
			Rating:       input.Body.Rating,
			Comment:      input.Body.Comment,
			ReviewedOn:   time.Now(),
		}
		return tx.Create(&review).Error
	})
	if err != nil {
		if _, ok := err.(huma.StatusError); ok {
			return nil, err
		}
		return nil, mapWriteError(database.Classify("review", err))
	}

	res := &CreateReviewResponse{}
	res.Body.ID = review.ID
	return res, nil
}

type OpenTicketRequest struct {
	BookingID uint `path:"id"`
	Body      struct {
		Issue          string `json:"issue" required:"true"`
		ContactChannel string `json:"contact_channel" doc:"email, phone or chat"`
	}
}

type OpenTicketResponse struct {
	Body struct {
		ID uint `json:"id"`
	}
}

func (h *FeedbackHandler) HandleOpenTicket(ctx context.Context, input *OpenTicketRequest) (*OpenTicketResponse, error) {
	var ticket models.CustomerService
	var booking models.Booking
	var guest models.Guest

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, input.BookingID).Error; err != nil {
			return err
		}
		if err := tx.First(&guest, booking.GuestID).Error; err != nil {
			return err
		}

		ticket = models.CustomerService{
			BookingID:      booking.ID,
			Issue:          input.Body.Issue,
			ContactChannel: input.Body.ContactChannel,
		}
		return tx.Create(&ticket).Error
	})
	if err != nil {
		return nil, mapWriteError(database.Classify("customer_service", err))
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyTicket(guest, booking, ticket); err != nil {
			// The ticket row is committed; ops just won't get pinged.
			log.Printf("Failed to notify ops channel: %v", err)
		}
	}

	res := &OpenTicketResponse{}
	res.Body.ID = ticket.ID
	return res, nil
}

type ResolveTicketRequest struct {
	ID   uint `path:"id"`
	Body struct {
		Resolution string `json:"resolution" required:"true"`
	}
}

func (h *FeedbackHandler) HandleResolveTicket(ctx context.Context, input *ResolveTicketRequest) (*MessageResponse, error) {
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var ticket models.CustomerService
		if err := tx.First(&ticket, input.ID).Error; err != nil {
			return err
		}
		now := time.Now()
		return tx.Model(&ticket).Updates(map[string]interface{}{
			"resolution":  input.Body.Resolution,
			"resolved_at": now,
		}).Error
	})
	if err != nil {
		return nil, mapWriteError(database.Classify("customer_service", err))
	}
	return message("Ticket resolved"), nil
}

type CreateEventRequest struct {
	BookingID uint `path:"id"`
	Body      struct {
		Name        string    `json:"name" required:"true"`
		StartsOn    time.Time `json:"starts_on"`
		EndsOn      time.Time `json:"ends_on"`
		Description string    `json:"description"`
	}
}

type CreateEventResponse struct {
	Body struct {
		ID uint `json:"id"`
	}
}

func (h *FeedbackHandler) HandleCreateEvent(ctx context.Context, input *CreateEventRequest) (*CreateEventResponse, error) {
	if input.Body.EndsOn.Before(input.Body.StartsOn) {
		return nil, huma.Error422UnprocessableEntity("Event end must not precede its start")
	}

	event := models.Event{
		BookingID:   input.BookingID,
		Name:        input.Body.Name,
		StartsOn:    input.Body.StartsOn,
		EndsOn:      input.Body.EndsOn,
		Description: input.Body.Description,
	}
	if err := h.db.Create(&event).Error; err != nil {
		return nil, mapWriteError(database.Classify("event", err))
	}

	res := &CreateEventResponse{}
	res.Body.ID = event.ID
	return res, nil
}
