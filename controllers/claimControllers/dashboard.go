package claimController

import (
	"claimit/database"
	"claimit/middleware"
	"claimit/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// AdminClaimStats aggregates claim volumes for the admin dashboard: totals
// per status, submissions inside the current calendar month, and the sum of
// estimated losses.
func AdminClaimStats(c *fiber.Ctx) error {
	admin := middleware.RequireAdmin(c)
	if admin == nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Admin role required!", nil)
	}

	db := database.Database.Db

	statuses := []string{
		models.StatusPending,
		models.StatusUnderReview,
		models.StatusApproved,
		models.StatusRejected,
		models.StatusSettled,
	}

	byStatus := make(map[string]int64, len(statuses))
	for _, status := range statuses {
		var count int64
		if err := db.Model(&models.Claim{}).Where("status = ?", status).Count(&count).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute claim stats!", nil)
		}
		byStatus[status] = count
	}

	var total int64
	db.Model(&models.Claim{}).Count(&total)

	monthStart := now.BeginningOfMonth()
	var thisMonth int64
	db.Model(&models.Claim{}).Where("created_at >= ?", monthStart).Count(&thisMonth)

	var totalLoss float64
	db.Model(&models.Claim{}).Select("COALESCE(SUM(estimated_loss), 0)").Scan(&totalLoss)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Claim stats fetched successfully!", fiber.Map{
		"total":                total,
		"by_status":            byStatus,
		"submitted_this_month": thisMonth,
		"total_estimated_loss": totalLoss,
	})
}
