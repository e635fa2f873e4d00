package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Guest is the root identity of the marketplace. Hosts and travel admins
// are specializations referencing a guest row. Deleting a guest removes
// everything the guest owns.
type Guest struct {
	gorm.Model
	Email            string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash     string `json:"-" gorm:"not null"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	StreetAddress    string `json:"street_address"`
	City             string `json:"city"`
	Country          string `json:"country"`
	PostalCode       string `json:"postal_code"`
	MarketingConsent bool   `json:"marketing_consent"`
	Locale           string `json:"locale"`

	SocialLinks   []GuestSocialNetwork `json:"social_links,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	LoginHistory  []LoginHistory       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Notifications []Notification       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Bookings      []Booking            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// LoginHistory rows are append-only and never mutated.
type LoginHistory struct {
	gorm.Model
	GuestID       uint      `json:"guest_id" gorm:"not null;index"`
	LoggedInAt    time.Time `json:"logged_in_at"`
	OriginAddress string    `json:"origin_address"`
}

// Notification rows are append-only.
type Notification struct {
	gorm.Model
	GuestID uint           `json:"guest_id" gorm:"not null;index"`
	Message string         `json:"message" gorm:"type:text"`
	Payload datatypes.JSON `json:"payload,omitempty"`
	SentAt  time.Time      `json:"sent_at"`
}
