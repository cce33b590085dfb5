package claimController

import (
	"claimit/database"
	"claimit/middleware"
	"claimit/models"
	"claimit/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// notificationTypeForStatus picks the ledger entry type for a status change.
func notificationTypeForStatus(status string) string {
	switch status {
	case models.StatusApproved, models.StatusSettled:
		return models.NotifySuccess
	case models.StatusRejected:
		return models.NotifyDanger
	default:
		return models.NotifyInfo
	}
}

// UpdateClaimStatus moves a claim through the adjudication state machine.
// Admin only; transitions outside the adjacency table are refused. On
// success the owner gets a ledger notification and a best-effort email.
func UpdateClaimStatus(c *fiber.Ctx) error {
	admin := middleware.RequireAdmin(c)
	if admin == nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Admin role required!", nil)
	}

	reqData, ok := c.Locals("validatedClaimStatus").(*struct {
		ClaimID uint   `json:"claim_id"`
		Status  string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var claim models.Claim
	if err := database.Database.Db.First(&claim, reqData.ClaimID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Claim not found!", nil)
	}

	if !models.CanTransition(claim.Status, reqData.Status) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, models.ErrInvalidTransition.Error(), fiber.Map{
			"from": claim.Status,
			"to":   reqData.Status,
		})
	}

	claimNumber := ""
	if claim.ClaimNumber != nil {
		claimNumber = *claim.ClaimNumber
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&claim).Update("status", reqData.Status).Error; err != nil {
			return err
		}

		notification := models.Notification{
			UserID:  claim.UserID,
			Title:   "Claim " + claimNumber + " status update",
			Message: "Your claim is now " + reqData.Status + ".",
			Type:    notificationTypeForStatus(reqData.Status),
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		log.Printf("Error updating status for claim %d: %v", claim.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update claim status!", nil)
	}

	// Notify the owner by email without blocking the request.
	go func(ownerID uint, number, status string) {
		var owner models.User
		if err := database.Database.Db.Select("name, email").First(&owner, ownerID).Error; err == nil && owner.Email != "" {
			if err := utils.SendClaimStatusEmail(owner.Email, owner.Name, number, status); err != nil {
				log.Printf("Error sending status email for claim %s: %v", number, err)
			}
		}
	}(claim.UserID, claimNumber, reqData.Status)

	claim.Status = reqData.Status
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Claim status updated successfully!", claim)
}

// UpdateClaimPrediction records the scoring collaborator's output. Admin
// only; claimants can never write these fields.
func UpdateClaimPrediction(c *fiber.Ctx) error {
	admin := middleware.RequireAdmin(c)
	if admin == nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Admin role required!", nil)
	}

	reqData, ok := c.Locals("validatedClaimPrediction").(*struct {
		ClaimID           uint     `json:"claim_id"`
		PredictedApproval *float64 `json:"predicted_approval"`
		PredictedLimit    *float64 `json:"predicted_limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var claim models.Claim
	if err := database.Database.Db.First(&claim, reqData.ClaimID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Claim not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.PredictedApproval != nil {
		updates["predicted_approval"] = *reqData.PredictedApproval
		claim.PredictedApproval = reqData.PredictedApproval
	}
	if reqData.PredictedLimit != nil {
		updates["predicted_limit"] = *reqData.PredictedLimit
		claim.PredictedLimit = reqData.PredictedLimit
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&claim).Updates(updates).Error; err != nil {
			log.Printf("Error saving prediction for claim %d: %v", claim.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save prediction!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prediction saved successfully!", claim)
}
