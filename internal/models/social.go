package models

import (
	"gorm.io/gorm"
)

// SocialNetwork is a catalog entry. Name uniqueness is a convention, not a
// constraint.
type SocialNetwork struct {
	gorm.Model
	Name string `json:"name"`
	URL  string `json:"url"`
}

// GuestSocialNetwork links a guest to a network profile. A guest may link
// the same network more than once; deduplication is an application concern.
type GuestSocialNetwork struct {
	gorm.Model
	GuestID         uint          `json:"guest_id" gorm:"not null;index"`
	SocialNetworkID uint          `json:"social_network_id" gorm:"not null;index"`
	SocialNetwork   SocialNetwork `json:"social_network" gorm:"constraint:OnDelete:CASCADE"`
	ProfileURL      string        `json:"profile_url"`
}
