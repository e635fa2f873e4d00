package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/openstays/marketplace-api/internal/database"
	"github.com/openstays/marketplace-api/internal/models"
	"gorm.io/gorm"
)

type HostHandler struct {
	db *gorm.DB
}

func NewHostHandler(db *gorm.DB) *HostHandler {
	return &HostHandler{db: db}
}

type PromoteGuestRequest struct {
	Body struct {
		GuestID          uint  `json:"guest_id" required:"true" doc:"Guest to promote to host"`
		ReferredByHostID *uint `json:"referred_by_host_id,omitempty" doc:"Existing host who referred this one"`
	}
}

type PromoteGuestResponse struct {
	Body struct {
		ID      uint `json:"id"`
		GuestID uint `json:"guest_id"`
	}
}

// HandlePromoteGuest creates a host row for an existing guest. The schema
// does not forbid multiple host rows per guest; the write path does.
func (h *HostHandler) HandlePromoteGuest(ctx context.Context, input *PromoteGuestRequest) (*PromoteGuestResponse, error) {
	var host models.Host
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.First(&guest, input.Body.GuestID).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.Host{}).Where("guest_id = ?", guest.ID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return huma.Error409Conflict("Guest is already a host")
		}

		host = models.Host{
			GuestID:  guest.ID,
			JoinedAt: time.Now(),
		}
		if input.Body.ReferredByHostID != nil {
			if err := tx.First(&models.Host{}, *input.Body.ReferredByHostID).Error; err != nil {
				return huma.Error422UnprocessableEntity("Referring host does not exist")
			}
			host.ReferredByHostID = input.Body.ReferredByHostID
		}

		return tx.Create(&host).Error
	})
	if err != nil {
		if _, ok := err.(huma.StatusError); ok {
			return nil, err
		}
		return nil, mapWriteError(database.Classify("host", err))
	}

	res := &PromoteGuestResponse{}
	res.Body.ID = host.ID
	res.Body.GuestID = host.GuestID
	return res, nil
}

type SetReferralRequest struct {
	ID   uint `path:"id"`
	Body struct {
		ReferredByHostID uint `json:"referred_by_host_id" required:"true"`
	}
}

// HandleSetReferral points a host at its referrer. The referral chain must
// stay acyclic: a finite upward walk from the referrer must never reach the
// host being updated. The storage engine is not trusted to detect cycles.
func (h *HostHandler) HandleSetReferral(ctx context.Context, input *SetReferralRequest) (*MessageResponse, error) {
	if input.ID == input.Body.ReferredByHostID {
		return nil, huma.Error422UnprocessableEntity("A host cannot refer itself")
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var host models.Host
		if err := tx.First(&host, input.ID).Error; err != nil {
			return err
		}
		var referrer models.Host
		if err := tx.First(&referrer, input.Body.ReferredByHostID).Error; err != nil {
			return huma.Error422UnprocessableEntity("Referring host does not exist")
		}

		cyclic, err := referralCreatesCycle(tx, host.ID, referrer.ID)
		if err != nil {
			return err
		}
		if cyclic {
			return huma.Error422UnprocessableEntity("Referral would create a cycle")
		}

		return tx.Model(&host).Update("referred_by_host_id", referrer.ID).Error
	})
	if err != nil {
		if _, ok := err.(huma.StatusError); ok {
			return nil, err
		}
		return nil, mapWriteError(database.Classify("host", err))
	}
	return message("Referral set"), nil
}

// referralCreatesCycle walks the chain upward from the candidate referrer.
// The visited set also bounds the walk against pre-existing corruption.
func referralCreatesCycle(tx *gorm.DB, hostID, referrerID uint) (bool, error) {
	seen := map[uint]bool{hostID: true}
	current := referrerID
	for {
		if seen[current] {
			return true, nil
		}
		seen[current] = true

		var ancestor models.Host
		if err := tx.Select("id", "referred_by_host_id").First(&ancestor, current).Error; err != nil {
			return false, err
		}
		if ancestor.ReferredByHostID == nil {
			return false, nil
		}
		current = *ancestor.ReferredByHostID
	}
}

type DeleteHostRequest struct {
	ID uint `path:"id"`
}

// HandleDeleteHost removes a host and cascades through its rentals, rooms
// and bookings. Hosts referred by the deleted host survive with their
// referral pointer cleared.
func (h *HostHandler) HandleDeleteHost(ctx context.Context, input *DeleteHostRequest) (*MessageResponse, error) {
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var host models.Host
		if err := tx.First(&host, input.ID).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&host).Error
	})
	if err != nil {
		return nil, mapWriteError(database.Classify("host", err))
	}
	return message("Host deleted"), nil
}

type CreateTravelAdminRequest struct {
	Body struct {
		Email           string `json:"email" format:"email" required:"true"`
		ContactPhone    string `json:"contact_phone"`
		AssignedGuestID *uint  `json:"assigned_guest_id,omitempty"`
	}
}

type CreateTravelAdminResponse struct {
	Body struct {
		ID uint `json:"id"`
	}
}

func (h *HostHandler) HandleCreateTravelAdmin(ctx context.Context, input *CreateTravelAdminRequest) (*CreateTravelAdminResponse, error) {
	admin := models.TravelAdmin{
		Email:           input.Body.Email,
		ContactPhone:    input.Body.ContactPhone,
		AssignedGuestID: input.Body.AssignedGuestID,
	}
	if err := h.db.Create(&admin).Error; err != nil {
		return nil, mapWriteError(database.Classify("travel_admin", err))
	}

	res := &CreateTravelAdminResponse{}
	res.Body.ID = admin.ID
	return res, nil
}
