package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is keyed to the booking it rates. ReviewerID resolves against the
// guests table for both reviewer types; see ReviewerType.
type Review struct {
	gorm.Model
	BookingID    uint         `json:"booking_id" gorm:"not null;index"`
	ReviewerID   uint         `json:"reviewer_id" gorm:"not null;index"`
	Reviewer     Guest        `json:"-" gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE"`
	ReviewerType ReviewerType `json:"reviewer_type" gorm:"type:varchar(8);not null;check:chk_reviews_reviewer_type,reviewer_type IN ('Guest','Host')"`
	Rating       int          `json:"rating" gorm:"check:chk_reviews_rating,rating >= 1 AND rating <= 5"`
	Comment      string       `json:"comment" gorm:"type:text"`
	ReviewedOn   time.Time    `json:"reviewed_on"`
}

// CustomerService is a support ticket against a booking.
type CustomerService struct {
	gorm.Model
	BookingID      uint       `json:"booking_id" gorm:"not null;index"`
	Issue          string     `json:"issue" gorm:"type:text"`
	Resolution     string     `json:"resolution" gorm:"type:text"`
	ContactChannel string     `json:"contact_channel"` // email, phone, chat
	ResolvedAt     *time.Time `json:"resolved_at"`
}

type Event struct {
	gorm.Model
	BookingID   uint      `json:"booking_id" gorm:"not null;index"`
	Name        string    `json:"name"`
	StartsOn    time.Time `json:"starts_on"`
	EndsOn      time.Time `json:"ends_on"`
	Description string    `json:"description" gorm:"type:text"`
}
