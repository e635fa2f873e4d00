package database

import (
	"github.com/openstays/marketplace-api/internal/models"
	"gorm.io/gorm"
)

// Seed loads the baseline catalogs (cities, amenities, cancellation
// policies, social networks). Idempotent: existing entries are left alone.
func Seed(db *gorm.DB) error {
	cities := []models.City{
		{Name: "Lisbon", Country: "Portugal"},
		{Name: "Barcelona", Country: "Spain"},
		{Name: "Vienna", Country: "Austria"},
		{Name: "Prague", Country: "Czechia"},
	}
	for _, c := range cities {
		if err := db.Where(models.City{Name: c.Name, Country: c.Country}).FirstOrCreate(&c).Error; err != nil {
			return err
		}
	}

	amenities := []models.Amenity{
		{Name: "WiFi", Description: "Wireless internet throughout the property"},
		{Name: "Pool", Description: "Shared or private swimming pool"},
		{Name: "Parking", Description: "On-site parking space"},
		{Name: "Kitchen", Description: "Fully equipped kitchen"},
		{Name: "AirConditioning", Description: "Air conditioning in all rooms"},
	}
	for _, a := range amenities {
		if err := db.Where(models.Amenity{Name: a.Name}).Attrs(models.Amenity{Description: a.Description}).FirstOrCreate(&a).Error; err != nil {
			return err
		}
	}

	policies := []models.CancellationPolicy{
		{Name: "Flexible", Description: "Full refund up to 24 hours before check-in."},
		{Name: "Moderate", Description: "Full refund up to 5 days before check-in, 50% afterwards."},
		{Name: "Strict", Description: "50% refund up to 14 days before check-in, none afterwards."},
	}
	for _, p := range policies {
		if err := db.Where(models.CancellationPolicy{Name: p.Name}).Attrs(models.CancellationPolicy{Description: p.Description}).FirstOrCreate(&p).Error; err != nil {
			return err
		}
	}

	networks := []models.SocialNetwork{
		{Name: "Instagram", URL: "https://instagram.com"},
		{Name: "Facebook", URL: "https://facebook.com"},
		{Name: "X", URL: "https://x.com"},
	}
	for _, n := range networks {
		if err := db.Where(models.SocialNetwork{Name: n.Name}).Attrs(models.SocialNetwork{URL: n.URL}).FirstOrCreate(&n).Error; err != nil {
			return err
		}
	}

	return nil
}
