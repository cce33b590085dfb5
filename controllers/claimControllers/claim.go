package claimController

import (
	"claimit/database"
	"claimit/middleware"
	"claimit/models"
	"claimit/utils"
	"errors"
	"log"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateClaim submits a new claim with zero or more attached documents.
// The claim insert, identifier assignment and document rows share one
// transaction: a single rejected file rolls back everything.
func CreateClaim(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedClaimCreate").(*struct {
		DisasterType  string
		PropertyType  string
		Description   string
		EstimatedLoss float64
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Collect uploads before touching the database. Status, predictions and
	// identifiers are server-assigned; nothing from the payload reaches them.
	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["documents"]
	}

	// Reject the whole submission before persisting anything.
	for _, fh := range files {
		if err := utils.ValidateClaimFile(fh); err != nil {
			var rejected *models.DocumentRejectedError
			if errors.As(err, &rejected) {
				return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, rejected.Error(), nil)
			}
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Document rejected!", nil)
		}
	}

	claim := models.Claim{
		UserID:        user.ID,
		DisasterType:  reqData.DisasterType,
		PropertyType:  reqData.PropertyType,
		Description:   reqData.Description,
		EstimatedLoss: reqData.EstimatedLoss,
		Status:        models.StatusPending,
	}

	savedFiles := false
	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&claim).Error; err != nil {
			return err
		}

		// Identifier derivation needs the store-assigned id, so it must
		// follow the insert.
		if err := utils.AssignClaimIdentifiers(tx, &claim); err != nil {
			return err
		}

		for _, fh := range files {
			relPath, err := utils.SaveClaimDocument(fh, user.ID, claim.ID)
			if err != nil {
				return err
			}
			savedFiles = true

			doc := models.ClaimDocument{
				ClaimID:    claim.ID,
				FileName:   fh.Filename,
				FilePath:   relPath,
				FileSize:   fh.Size,
				Extension:  utils.FileExtension(fh.Filename),
				UploadedAt: time.Now(),
			}
			if err := tx.Create(&doc).Error; err != nil {
				return err
			}
			claim.Documents = append(claim.Documents, doc)
		}
		return nil
	})
	if err != nil {
		// Remove any files written before the rollback.
		if savedFiles {
			if rmErr := utils.RemoveClaimFiles(user.ID, claim.ID); rmErr != nil {
				log.Printf("Error cleaning up claim files: %v", rmErr)
			}
		}
		log.Printf("Error creating claim for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create claim!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Claim submitted successfully!", claim)
}

// ClaimList returns claims visible to the caller, newest first. Regular users
// only ever see their own rows; the filter happens in the query, not after.
func ClaimList(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedClaimList").(*struct {
		Page         *int    `query:"page"`
		Limit        *int    `query:"limit"`
		Status       *string `query:"status"`
		DisasterType *string `query:"disaster_type"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	// Default pagination
	page := 1
	limit := 10
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := middleware.OwnedScope(database.Database.Db.Model(&models.Claim{}), user)

	if reqData.Status != nil && *reqData.Status != "" {
		db = db.Where("status = ?", *reqData.Status)
	}
	if reqData.DisasterType != nil && *reqData.DisasterType != "" {
		db = db.Where("disaster_type = ?", *reqData.DisasterType)
	}

	var total int64
	db.Count(&total)

	var claims []models.Claim
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&claims).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch claims!", nil)
	}

	response := map[string]interface{}{
		"claims": claims,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Claim list fetched successfully!", response)
}

// GetClaim returns one claim with its documents. Foreign claims come back as
// 404 so claim ids reveal nothing about other accounts.
func GetClaim(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	claimID, err := c.ParamsInt("id")
	if err != nil || claimID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid claim id!", nil)
	}

	var claim models.Claim
	if err := middleware.OwnedScope(database.Database.Db, user).
		Preload("Documents").
		First(&claim, claimID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Claim not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Claim fetched successfully!", claim)
}

// UpdateClaim lets the owner amend a claim that is still pending. Status,
// predictions, identifiers and timestamps are never writable here.
func UpdateClaim(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	claimID, err := c.ParamsInt("id")
	if err != nil || claimID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid claim id!", nil)
	}

	reqData, ok := c.Locals("validatedClaimUpdate").(*struct {
		DisasterType  *string  `json:"disaster_type"`
		PropertyType  *string  `json:"property_type"`
		Description   *string  `json:"description"`
		EstimatedLoss *float64 `json:"estimated_loss"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var claim models.Claim
	if err := middleware.OwnedScope(database.Database.Db, user).First(&claim, claimID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Claim not found!", nil)
	}

	if claim.Status != models.StatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Only pending claims can be amended!", nil)
	}

	if reqData.DisasterType != nil {
		claim.DisasterType = *reqData.DisasterType
	}
	if reqData.PropertyType != nil {
		claim.PropertyType = *reqData.PropertyType
	}
	if reqData.Description != nil {
		claim.Description = *reqData.Description
	}
	if reqData.EstimatedLoss != nil {
		claim.EstimatedLoss = *reqData.EstimatedLoss
	}

	if err := database.Database.Db.Save(&claim).Error; err != nil {
		log.Printf("Error updating claim %d: %v", claim.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update claim!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Claim updated successfully!", claim)
}

// DeleteClaim removes a claim together with its documents and stored files.
func DeleteClaim(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	claimID, err := c.ParamsInt("id")
	if err != nil || claimID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid claim id!", nil)
	}

	var claim models.Claim
	if err := middleware.OwnedScope(database.Database.Db, user).First(&claim, claimID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Claim not found!", nil)
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("claim_id = ?", claim.ID).Delete(&models.ClaimDocument{}).Error; err != nil {
			return err
		}
		return tx.Delete(&claim).Error
	})
	if err != nil {
		log.Printf("Error deleting claim %d: %v", claim.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete claim!", nil)
	}

	if err := utils.RemoveClaimFiles(claim.UserID, claim.ID); err != nil {
		log.Printf("Error removing files for claim %d: %v", claim.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Claim deleted successfully!", nil)
}
