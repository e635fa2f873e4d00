package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/openstays/marketplace-api/internal/database"
	"github.com/openstays/marketplace-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type GuestHandler struct {
	db *gorm.DB
}

func NewGuestHandler(db *gorm.DB) *GuestHandler {
	return &GuestHandler{db: db}
}

type CreateGuestRequest struct {
	Body struct {
		Email            string `json:"email" format:"email" required:"true" doc:"Unique guest email"`
		Password         string `json:"password" required:"true" minLength:"8" doc:"Plaintext credential, stored as a bcrypt hash"`
		FirstName        string `json:"first_name"`
		LastName         string `json:"last_name"`
		StreetAddress    string `json:"street_address"`
		City             string `json:"city"`
		Country          string `json:"country"`
		PostalCode       string `json:"postal_code"`
		MarketingConsent bool   `json:"marketing_consent" doc:"Whether the guest consented to marketing mail"`
		Locale           string `json:"locale" doc:"BCP 47 locale tag, e.g. en-GB"`
	}
}

type CreateGuestResponse struct {
	Body struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
	}
}

func (h *GuestHandler) HandleCreateGuest(ctx context.Context, input *CreateGuestRequest) (*CreateGuestResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to hash credential: " + err.Error())
	}

	guest := models.Guest{
		Email:            input.Body.Email,
		PasswordHash:     string(hash),
		FirstName:        input.Body.FirstName,
		LastName:         input.Body.LastName,
		StreetAddress:    input.Body.StreetAddress,
		City:             input.Body.City,
		Country:          input.Body.Country,
		PostalCode:       input.Body.PostalCode,
		MarketingConsent: input.Body.MarketingConsent,
		Locale:           input.Body.Locale,
	}

	if err := h.db.Create(&guest).Error; err != nil {
		return nil, mapWriteError(database.Classify("guest", err))
	}

	res := &CreateGuestResponse{}
	res.Body.ID = guest.ID
	res.Body.Email = guest.Email
	return res, nil
}

type GetGuestRequest struct {
	ID uint `path:"id"`
}

type GetGuestResponse struct {
	Body models.Guest
}

func (h *GuestHandler) HandleGetGuest(ctx context.Context, input *GetGuestRequest) (*GetGuestResponse, error) {
	var guest models.Guest
	if err := h.db.Preload("SocialLinks.SocialNetwork").First(&guest, input.ID).Error; err != nil {
		return nil, mapWriteError(err)
	}
	return &GetGuestResponse{Body: guest}, nil
}

type DeleteGuestRequest struct {
	ID uint `path:"id"`
}

// HandleDeleteGuest removes a guest and everything the guest owns: host
// rows (and transitively their rentals), bookings, reviews written as
// reviewer, social links, login history and notifications. Travel admins
// assigned to the guest survive with a nulled reference.
func (h *GuestHandler) HandleDeleteGuest(ctx context.Context, input *DeleteGuestRequest) (*MessageResponse, error) {
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.First(&guest, input.ID).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&guest).Error
	})
	if err != nil {
		return nil, mapWriteError(database.Classify("guest", err))
	}
	return message("Guest deleted"), nil
}

type RecordLoginRequest struct {
	ID   uint `path:"id"`
	Body struct {
		OriginAddress string `json:"origin_address" required:"true" doc:"Client address the login came from"`
	}
}

func (h *GuestHandler) HandleRecordLogin(ctx context.Context, input *RecordLoginRequest) (*MessageResponse, error) {
	entry := models.LoginHistory{
		GuestID:       input.ID,
		LoggedInAt:    time.Now(),
		OriginAddress: input.Body.OriginAddress,
	}
	if err := h.db.Create(&entry).Error; err != nil {
		return nil, mapWriteError(database.Classify("login_history", err))
	}
	return message("Login recorded"), nil
}

type RecordNotificationRequest struct {
	ID   uint `path:"id"`
	Body struct {
		Message string                 `json:"message" required:"true"`
		Payload map[string]interface{} `json:"payload,omitempty" doc:"Free-form structured payload"`
	}
}

func (h *GuestHandler) HandleRecordNotification(ctx context.Context, input *RecordNotificationRequest) (*MessageResponse, error) {
	notification := models.Notification{
		GuestID: input.ID,
		Message: input.Body.Message,
		SentAt:  time.Now(),
	}
	if input.Body.Payload != nil {
		raw, err := json.Marshal(input.Body.Payload)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("Invalid payload: " + err.Error())
		}
		notification.Payload = raw
	}
	if err := h.db.Create(&notification).Error; err != nil {
		return nil, mapWriteError(database.Classify("notification", err))
	}
	return message("Notification recorded"), nil
}

type LinkSocialNetworkRequest struct {
	ID   uint `path:"id"`
	Body struct {
		SocialNetworkID uint   `json:"social_network_id" required:"true"`
		ProfileURL      string `json:"profile_url" required:"true" format:"uri"`
	}
}

func (h *GuestHandler) HandleLinkSocialNetwork(ctx context.Context, input *LinkSocialNetworkRequest) (*MessageResponse, error) {
	link := models.GuestSocialNetwork{
		GuestID:         input.ID,
		SocialNetworkID: input.Body.SocialNetworkID,
		ProfileURL:      input.Body.ProfileURL,
	}
	if err := h.db.Create(&link).Error; err != nil {
		return nil, mapWriteError(database.Classify("guest_social_network", err))
	}
	return message("Social network linked"), nil
}
