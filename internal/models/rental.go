package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// VacationRental exists only while both its host and its location exist;
// removing either cascades through rooms, bookings, junction rows and
// promotions.
type VacationRental struct {
	gorm.Model
	HostID        uint           `json:"host_id" gorm:"not null;index"`
	LocationID    uint           `json:"location_id" gorm:"not null;index"`
	PropertyType  string         `json:"property_type"` // apartment, house, cabin, villa
	Capacity      int            `json:"capacity"`
	PerPersonRate float64        `json:"per_person_rate"`
	Features      datatypes.JSON `json:"features,omitempty"`
	Availability  string         `json:"availability" gorm:"type:text"`

	Rooms      []Room                  `json:"rooms,omitempty" gorm:"foreignKey:VacationRentalID;constraint:OnDelete:CASCADE"`
	Amenities  []VacationRentalAmenity `json:"amenities,omitempty" gorm:"foreignKey:VacationRentalID;constraint:OnDelete:CASCADE"`
	Policies   []VacationRentalPolicy  `json:"policies,omitempty" gorm:"foreignKey:VacationRentalID;constraint:OnDelete:CASCADE"`
	Promotions []Promotion             `json:"-" gorm:"foreignKey:VacationRentalID;constraint:OnDelete:CASCADE"`
}

// Room pricing is deliberately decoupled from the rental's per-person rate
// (base price vs. aggregate capacity pricing). The availability window is
// validated at the write boundary, not in the schema.
type Room struct {
	gorm.Model
	VacationRentalID uint      `json:"vacation_rental_id" gorm:"not null;index"`
	RoomType         string    `json:"room_type"`
	NightlyPrice     float64   `json:"nightly_price"`
	AvailableFrom    time.Time `json:"available_from"`
	AvailableTo      time.Time `json:"available_to"`

	Bookings []Booking `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

type Amenity struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
}

// VacationRentalAmenity is a pure junction row. The composite primary key
// is the sole duplication guard.
type VacationRentalAmenity struct {
	VacationRentalID uint    `json:"vacation_rental_id" gorm:"primaryKey;autoIncrement:false"`
	AmenityID        uint    `json:"amenity_id" gorm:"primaryKey;autoIncrement:false"`
	Amenity          Amenity `json:"amenity" gorm:"constraint:OnDelete:CASCADE"`
}

type CancellationPolicy struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description" gorm:"type:text"`
}

type VacationRentalPolicy struct {
	VacationRentalID     uint               `json:"vacation_rental_id" gorm:"primaryKey;autoIncrement:false"`
	CancellationPolicyID uint               `json:"cancellation_policy_id" gorm:"primaryKey;autoIncrement:false"`
	CancellationPolicy   CancellationPolicy `json:"cancellation_policy" gorm:"constraint:OnDelete:CASCADE"`
}
