package utils

import (
	"claimit/models"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ClaimNumber derives the display claim number from the durable row id and
// the calendar year. Uniqueness is inherited from the id; nothing re-checks it.
func ClaimNumber(id uint, year int) string {
	return fmt.Sprintf("CLM-%d%d", year, id)
}

// PolicyNumber derives the insurance policy number from the durable row id
// and the calendar year.
func PolicyNumber(id uint, year int) string {
	return fmt.Sprintf("POL%d%d", year, id)
}

// AssignClaimIdentifiers writes the derived claim and policy numbers back to
// an already-inserted claim. It must run after the insert because both values
// depend on the store-assigned id. The write-back is a second statement, so a
// claim found with NULL identifiers is recoverable, not corrupt: calling this
// again re-derives the same values for the same year.
func AssignClaimIdentifiers(db *gorm.DB, claim *models.Claim) error {
	if claim.ID == 0 {
		return fmt.Errorf("claim has no durable id yet")
	}

	year := time.Now().Year()
	claimNumber := ClaimNumber(claim.ID, year)
	policyNumber := PolicyNumber(claim.ID, year)

	if err := db.Model(claim).Updates(map[string]interface{}{
		"claim_number":            claimNumber,
		"insurance_policy_number": policyNumber,
	}).Error; err != nil {
		return err
	}

	claim.ClaimNumber = &claimNumber
	claim.InsurancePolicyNumber = &policyNumber
	return nil
}
