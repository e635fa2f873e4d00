package models

import (
	"gorm.io/gorm"
)

type City struct {
	gorm.Model
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Location places a rental on the map. The city reference is optional: a
// location may exist before its city is resolved, and losing the city row
// nulls the pointer rather than removing the location.
type Location struct {
	gorm.Model
	CityID        *uint  `json:"city_id" gorm:"index"`
	City          *City  `json:"city,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	StreetAddress string `json:"street_address"`
	District      string `json:"district"`
	PostalCode    string `json:"postal_code"`

	Rentals []VacationRental `json:"-" gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
}
