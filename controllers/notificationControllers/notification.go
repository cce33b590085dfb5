package notificationController

import (
	"claimit/database"
	"claimit/middleware"
	"claimit/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// CreateNotification appends a ledger entry for a user. Admin only; the
// target account must exist.
func CreateNotification(c *fiber.Ctx) error {
	admin := middleware.RequireAdmin(c)
	if admin == nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Admin role required!", nil)
	}

	reqData, ok := c.Locals("validatedNotificationCreate").(*struct {
		UserID  uint   `json:"user_id"`
		Title   string `json:"title"`
		Message string `json:"message"`
		Type    string `json:"type"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Check the referenced account exists
	var target models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.UserID).First(&target).Error; err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"user_id": "User does not exist!"})
	}

	notification := models.Notification{
		UserID:  reqData.UserID,
		Title:   reqData.Title,
		Message: reqData.Message,
		Type:    models.NotifyInfo,
	}
	if reqData.Type != "" {
		notification.Type = reqData.Type
	}

	if err := database.Database.Db.Create(&notification).Error; err != nil {
		log.Printf("Error creating notification for user %d: %v", reqData.UserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create notification!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Notification created successfully!", notification)
}

// NotificationList returns the caller's notifications newest first. Admins
// see every user's rows.
func NotificationList(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedNotificationList").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
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

	db := middleware.OwnedScope(database.Database.Db.Model(&models.Notification{}), user)

	var total int64
	db.Count(&total)

	var notifications []models.Notification
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	response := map[string]interface{}{
		"notifications": notifications,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", response)
}

// UnreadCount returns how many of the caller's notifications are unread.
func UnreadCount(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var count int64
	db := middleware.OwnedScope(database.Database.Db.Model(&models.Notification{}), user)
	if err := db.Where("is_read = ?", false).Count(&count).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to count notifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unread count fetched successfully!", fiber.Map{
		"unread": count,
	})
}

// MarkRead marks one notification as read. Idempotent: re-marking a read
// row succeeds without changing anything.
func MarkRead(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedNotificationMarkRead").(*struct {
		NotificationID uint `json:"notification_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var notification models.Notification
	if err := middleware.OwnedScope(database.Database.Db, user).First(&notification, reqData.NotificationID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	if !notification.IsRead {
		if err := database.Database.Db.Model(&notification).Update("is_read", true).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark notification read!", nil)
		}
		notification.IsRead = true
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read!", notification)
}

// MarkAllRead marks every notification the caller may touch as read in a
// single statement. No-op on rows already read.
func MarkAllRead(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := middleware.OwnedScope(database.Database.Db.Model(&models.Notification{}), user)
	result := db.Where("is_read = ?", false).Update("is_read", true)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark notifications read!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All notifications marked as read!", fiber.Map{
		"updated": result.RowsAffected,
	})
}

// DeleteNotification removes one notification. Foreign rows come back 404.
func DeleteNotification(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	notificationID, err := c.ParamsInt("id")
	if err != nil || notificationID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notification id!", nil)
	}

	var notification models.Notification
	if err := middleware.OwnedScope(database.Database.Db, user).First(&notification, notificationID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	if err := database.Database.Db.Delete(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete notification!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification deleted successfully!", nil)
}
