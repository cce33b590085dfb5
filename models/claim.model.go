package models

import (
	"gorm.io/gorm"
)

// Disaster types accepted on a claim.
const (
	DisasterWildfire   = "wildfire"
	DisasterFlood      = "flood"
	DisasterEarthquake = "earthquake"
	DisasterHurricane  = "hurricane"
	DisasterTornado    = "tornado"
	DisasterOther      = "other"
)

// Property types accepted on a claim.
const (
	PropertyAutomobile = "automobile"
	PropertyHouse      = "house"
	PropertyBusiness   = "business"
	PropertyOther      = "other"
)

// Claim statuses. A claim starts at pending and only moves forward.
const (
	StatusPending     = "pending"
	StatusUnderReview = "under_review"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
	StatusSettled     = "settled"
)

// ValidDisasterTypes is the accepted set for client-submitted claims.
var ValidDisasterTypes = map[string]bool{
	DisasterWildfire:   true,
	DisasterFlood:      true,
	DisasterEarthquake: true,
	DisasterHurricane:  true,
	DisasterTornado:    true,
	DisasterOther:      true,
}

// ValidPropertyTypes is the accepted set for client-submitted claims.
var ValidPropertyTypes = map[string]bool{
	PropertyAutomobile: true,
	PropertyHouse:      true,
	PropertyBusiness:   true,
	PropertyOther:      true,
}

// claimTransitions is the forward-only adjacency list for status changes.
// rejected and settled are terminal.
var claimTransitions = map[string][]string{
	StatusPending:     {StatusUnderReview, StatusRejected},
	StatusUnderReview: {StatusApproved, StatusRejected},
	StatusApproved:    {StatusSettled},
}

// CanTransition reports whether a claim may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range claimTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Claim struct {
	gorm.Model
	UserID                uint            `json:"user_id" gorm:"index;not null"` // Owner, immutable after creation
	DisasterType          string          `json:"disaster_type" gorm:"not null"`
	PropertyType          string          `json:"property_type" gorm:"not null"`
	Description           string          `json:"description" gorm:"type:text"`
	EstimatedLoss         float64         `json:"estimated_loss" gorm:"type:decimal(10,2)"`
	Status                string          `json:"status" gorm:"default:'pending'"`
	PredictedApproval     *float64        `json:"predicted_approval" gorm:"type:decimal(3,2)"` // 0.00 - 1.00, scoring only
	PredictedLimit        *float64        `json:"predicted_limit" gorm:"type:decimal(10,2)"`
	ClaimNumber           *string         `json:"claim_number" gorm:"uniqueIndex"`           // NULL until assigned, re-derivable from (id, year)
	InsurancePolicyNumber *string         `json:"insurance_policy_number" gorm:"uniqueIndex"` // NULL until assigned
	Documents             []ClaimDocument `json:"documents" gorm:"constraint:OnDelete:CASCADE"`
}
