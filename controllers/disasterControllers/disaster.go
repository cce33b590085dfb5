package disasterController

import (
	"claimit/config"
	"claimit/database"
	"claimit/middleware"
	"claimit/models"
	"claimit/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// DisasterList returns stored disaster declarations, newest declaration
// first. This is a pure read: it never triggers a feed fetch, so a broken
// upstream cannot slow down or break this path.
func DisasterList(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedDisasterList").(*struct {
		Page         *int    `query:"page"`
		Limit        *int    `query:"limit"`
		DisasterType *string `query:"disaster_type"`
		Severity     *int    `query:"severity"`
		Location     *string `query:"location"`
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

	db := database.Database.Db.Model(&models.DisasterUpdate{})

	if reqData.DisasterType != nil && *reqData.DisasterType != "" {
		db = db.Where("disaster_type = ?", *reqData.DisasterType)
	}
	if reqData.Severity != nil {
		db = db.Where("severity = ?", *reqData.Severity)
	}
	if reqData.Location != nil && *reqData.Location != "" {
		db = db.Where("location = ?", *reqData.Location)
	}

	var total int64
	db.Count(&total)

	var updates []models.DisasterUpdate
	if err := db.Order("last_refreshed DESC").Offset(offset).Limit(limit).Find(&updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch disaster updates!", nil)
	}

	response := map[string]interface{}{
		"updates": updates,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Disaster updates fetched successfully!", response)
}

// RefreshDisasters runs one FEMA sync on demand. Admin only. An unavailable
// upstream is reported without touching stored rows; readers keep whatever
// data the last good refresh left behind.
func RefreshDisasters(c *fiber.Ctx) error {
	admin := middleware.RequireAdmin(c)
	if admin == nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Admin role required!", nil)
	}

	reqData, ok := c.Locals("validatedDisasterRefresh").(*struct {
		States []string `json:"states"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	states := reqData.States
	if len(states) == 0 {
		states = config.AppConfig.FemaStates
	}

	result, err := utils.SyncDisasterDeclarations(states)
	if err != nil {
		if errors.Is(err, models.ErrUpstreamUnavailable) {
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Disaster feed unavailable, existing data preserved.", result)
		}
		log.Printf("Error refreshing disaster updates: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to refresh disaster updates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Disaster updates refreshed successfully!", result)
}
