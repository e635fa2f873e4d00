package models

import (
	"time"

	"gorm.io/gorm"
)

// Host is a guest who lists properties. The referral pointer is
// parent-optional and set-null on delete: referred hosts survive their
// referrer's removal. Cycle prevention happens at the write boundary, not
// in the schema.
type Host struct {
	gorm.Model
	GuestID  uint      `json:"guest_id" gorm:"not null;index"`
	Guest    Guest     `json:"guest" gorm:"constraint:OnDelete:CASCADE"`
	Rating   float32   `json:"rating" gorm:"check:chk_hosts_rating,rating >= 0 AND rating <= 5"`
	Verified bool      `json:"verified"`
	JoinedAt time.Time `json:"joined_at"`

	ReferredByHostID *uint `json:"referred_by_host_id" gorm:"index"`
	ReferredBy       *Host `json:"-" gorm:"foreignKey:ReferredByHostID;constraint:OnDelete:SET NULL"`

	Rentals []VacationRental `json:"rentals,omitempty" gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE"`
}

// TravelAdmin is a staff record, not guest-owned: deleting the assigned
// guest nulls the reference instead of removing the admin.
type TravelAdmin struct {
	gorm.Model
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	ContactPhone string `json:"contact_phone"`

	AssignedGuestID *uint  `json:"assigned_guest_id" gorm:"index"`
	AssignedGuest   *Guest `json:"-" gorm:"foreignKey:AssignedGuestID;constraint:OnDelete:SET NULL"`

	Reservations []Reservation `json:"-" gorm:"foreignKey:TravelAdminID;constraint:OnDelete:CASCADE"`
}
