package models

import (
	"time"

	"gorm.io/gorm"
)

// Severity levels for a disaster declaration.
const (
	SeverityLow     = 1
	SeverityMedium  = 2
	SeverityHigh    = 3
	SeverityUnknown = 4
)

// DisasterUpdate is one declaration sourced from the external feed.
// (Title, Location) is the natural key: a refresh updates matching rows in
// place instead of inserting duplicates. Rows are read-only to principals.
type DisasterUpdate struct {
	gorm.Model
	Title               string    `json:"title" gorm:"uniqueIndex:idx_disaster_natural_key;not null"`
	Location            string    `json:"location" gorm:"uniqueIndex:idx_disaster_natural_key;not null"`
	DisasterType        string    `json:"disaster_type" gorm:"default:'other'"`
	Severity            int       `json:"severity" gorm:"default:4"` // 1 Low, 2 Medium, 3 High, 4 Unknown
	DeclarationType     string    `json:"declaration_type" gorm:"default:''"`
	DeclarationDisplay  string    `json:"declaration_display" gorm:"default:''"`
	AssistanceAvailable bool      `json:"assistance_available" gorm:"default:false"`
	Source              string    `json:"source" gorm:"default:'FEMA'"`
	URL                 string    `json:"url" gorm:"default:''"`
	LastRefreshed       time.Time `json:"last_refreshed"`
}
