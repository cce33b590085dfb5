package models

import (
	"gorm.io/gorm"
)

// UserProfile holds contact details for a single account. One row per user,
// created together with the account at signup.
type UserProfile struct {
	gorm.Model
	UserID           uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	PhoneNumber      string `json:"phone_number" gorm:"default:''"`
	Street           string `json:"street" gorm:"default:''"`
	City             string `json:"city" gorm:"default:''"`
	State            string `json:"state" gorm:"default:''"` // Two-letter region code
	Country          string `json:"country" gorm:"default:''"`
	PostalCode       string `json:"postal_code" gorm:"default:''"`
	EmergencyContact string `json:"emergency_contact" gorm:"default:''"`
	ProfileImage     string `json:"profile_image" gorm:"default:''"`
}
