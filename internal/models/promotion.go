package models

import (
	"time"

	"gorm.io/gorm"
)

type Promotion struct {
	gorm.Model
	VacationRentalID uint      `json:"vacation_rental_id" gorm:"not null;index"`
	DiscountPercent  float64   `json:"discount_percent" gorm:"check:chk_promotions_discount_percent,discount_percent >= 0 AND discount_percent <= 100"`
	StartsOn         time.Time `json:"starts_on"`
	EndsOn           time.Time `json:"ends_on"`
}
