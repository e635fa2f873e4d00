package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/openstays/marketplace-api/internal/database"
	"github.com/openstays/marketplace-api/internal/models"
	"gorm.io/gorm"
)

type PropertyHandler struct {
	db *gorm.DB
}

func NewPropertyHandler(db *gorm.DB) *PropertyHandler {
	return &PropertyHandler{db: db}
}

type CreateLocationRequest struct {
	Body struct {
		CityID        *uint  `json:"city_id,omitempty" doc:"Optional resolved city"`
		StreetAddress string `json:"street_address" required:"true"`
		District      string `json:"district"`
		PostalCode    string `json:"postal_code"`
	}
}

type CreateLocationResponse struct {
	Body struct {
		ID uint `json:"id"`
	}
}

func (h *PropertyHandler) HandleCreateLocation(ctx context.Context, input *CreateLocationRequest) (*CreateLocationResponse, error) {
	location := models.Location{
		CityID:        input.Body.CityID,
		StreetAddress: input.Body.StreetAddress,
		District:      input.Body.District,
		PostalCode:    input.Body.PostalCode,
	}
	if err := h.db.Create(&location).Error; err != nil {
		return nil, mapWriteError(database.Classify("location", err))
	}

	res := &CreateLocationResponse{}
	res.Body.ID = location.ID
	return res, nil
}

type CreateRentalRequest struct {
	Body struct {
		HostID        uint     `json:"host_id" required:"true"`
		LocationID    uint     `json:"location_id" required:"true"`
		PropertyType  string   `json:"property_type" required:"true" doc:"apartment, house, cabin, villa"`
		Capacity      int      `json:"capacity" minimum:"1"`
		PerPersonRate float64  `json:"per_person_rate" minimum:"0"`
		Features      []string `json:"features,omitempty" doc:"Free-form feature flags"`
		Availability  string   `json:"availability"`
	}
}

type CreateRentalResponse struct {
	Body struct {
		ID uint `json:"id"`
	}
}

// HandleCreateRental creates a listing. Host and location must both exist
// at commit time; the whole write runs in one transaction.
func (h *PropertyHandler) HandleCreateRental(ctx context.Context, input *CreateRentalRequest) (*CreateRentalResponse, error) {
	var rental models.VacationRental
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Host{}, input.Body.HostID).Error; err != nil {
			return huma.Error422UnprocessableEntity("Host does not exist")
		}
		if err := tx.First(&models.Location{}, input.Body.LocationID).Error; err != nil {
			return huma.Error422UnprocessableEntity("Location does not exist")
		}

		rental = models.VacationRental{
			HostID:        input.Body.HostID,
			LocationID:    input.Body.LocationID,
			PropertyType:  input.Body.PropertyType,
			Capacity:      input.Body.Capacity,
			PerPersonRate: input.Body.PerPersonRate,
			Availability:  input.Body.Availability,
		}
		if len(input.Body.Features) > 0 {
			raw, err := json.Marshal(input.Body.Features)
			if err != nil {
				return huma.Error422UnprocessableEntity("Invalid features: " + err.Error())
			}
			rental.Features = raw
		}

		return tx.Create(&rental).Error
	})
	if err != nil {
		if _, ok := err.(huma.StatusError); ok {
			return nil, err
		}
		return nil, mapWriteError(database.Classify("vacation_rental", err))
	}

	res := &CreateRentalResponse{}
	res.Body.ID = rental.ID
	return res, nil
}

type DeleteRentalRequest struct {
	ID uint `path:"id"`
}

func (h *PropertyHandler) HandleDeleteRental(ctx context.Context, input *DeleteRentalRequest) (*MessageResponse, error) {
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var rental models.VacationRental
		if err := tx.First(&rental, input.ID).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&rental).Error
	})
	if err != nil {
		return nil, mapWriteError(database.Classify("vacation_rental", err))
	}
	return message("Rental deleted"), nil
}

type DeleteLocationRequest struct {
	ID uint `path:"id"`
}

// HandleDeleteLocation removes a location and cascades through every rental
// placed there. Cities are untouched.
func (h *PropertyHandler) HandleDeleteLocation(ctx context.Context, input *DeleteLocationRequest) (*MessageResponse, error) {
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var location models.Location
		if err := tx.First(&location, input.ID).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&location).Error
	})
	if err != nil {
		return nil, mapWriteError(database.Classify("location", err))
	}
	return message("Location deleted"), nil
}

type AddRoomRequest struct {
	RentalID uint `path:"id"`
	Body     struct {
		RoomType      string    `json:"room_type" required:"true"`
		NightlyPrice  float64   `json:"nightly_price" minimum:"0"`
		AvailableFrom time.Time `json:"available_from"`
		AvailableTo   time.Time `json:"available_to"`
	}
}

type AddRoomResponse struct {
	Body struct {
		ID uint `json:"id"`
	}
}

func (h *PropertyHandler) HandleAddRoom(ctx context.Context, input *AddRoomRequest) (*AddRoomResponse, error) {
	if input.Body.AvailableTo.Before(input.Body.AvailableFrom) {
		return nil, huma.Error422UnprocessableEntity("Available-from must not be after available-to")
	}

	room := models.Room{
		VacationRentalID: input.RentalID,
		RoomType:         input.Body.RoomType,
		NightlyPrice:     input.Body.NightlyPrice,
		AvailableFrom:    input.Body.AvailableFrom,
		AvailableTo:      input.Body.AvailableTo,
	}
	if err := h.db.Create(&room).Error; err != nil {
		return nil, mapWriteError(database.Classify("room", err))
	}

	res := &AddRoomResponse{}
	res.Body.ID = room.ID
	return res, nil
}

type AttachAmenityRequest struct {
	RentalID uint `path:"id"`
	Body     struct {
		AmenityID uint `json:"amenity_id" required:"true"`
	}
}

// HandleAttachAmenity links a catalog amenity to a rental. The composite
// primary key rejects a duplicate assignment with a conflict.
func (h *PropertyHandler) HandleAttachAmenity(ctx context.Context, input *AttachAmenityRequest) (*MessageResponse, error) {
	link := models.VacationRentalAmenity{
		VacationRentalID: input.RentalID,
		AmenityID:        input.Body.AmenityID,
	}
	if err := h.db.Create(&link).Error; err != nil {
		return nil, mapWriteError(database.Classify("vacation_rental_amenity", err))
	}
	return message("Amenity attached"), nil
}

type AttachPolicyRequest struct {
	RentalID uint `path:"id"`
	Body     struct {
		CancellationPolicyID uint `json:"cancellation_policy_id" required:"true"`
	}
}

func (h *PropertyHandler) HandleAttachPolicy(ctx context.Context, input *AttachPolicyRequest) (*MessageResponse, error) {
	link := models.VacationRentalPolicy{
		VacationRentalID:     input.RentalID,
		CancellationPolicyID: input.Body.CancellationPolicyID,
	}
	if err := h.db.Create(&link).Error; err != nil {
		return nil, mapWriteError(database.Classify("vacation_rental_policy", err))
	}
	return message("Policy attached"), nil
}

type CreatePromotionRequest struct {
	RentalID uint `path:"id"`
	Body     struct {
		DiscountPercent float64   `json:"discount_percent" minimum:"0" maximum:"100" required:"true"`
		StartsOn        time.Time `json:"starts_on"`
		EndsOn          time.Time `json:"ends_on"`
	}
}

type CreatePromotionResponse struct {
	Body struct {
		ID uint `json:"id"`
	}
}

func (h *PropertyHandler) HandleCreatePromotion(ctx context.Context, input *CreatePromotionRequest) (*CreatePromotionResponse, error) {
	if input.Body.EndsOn.Before(input.Body.StartsOn) {
		return nil, huma.Error422UnprocessableEntity("Promotion end must not precede its start")
	}

	promotion := models.Promotion{
		VacationRentalID: input.RentalID,
		DiscountPercent:  input.Body.DiscountPercent,
		StartsOn:         input.Body.StartsOn,
		EndsOn:           input.Body.EndsOn,
	}
	if err := h.db.Create(&promotion).Error; err != nil {
		return nil, mapWriteError(database.Classify("promotion", err))
	}

	res := &CreatePromotionResponse{}
	res.Body.ID = promotion.ID
	return res, nil
}
