package notificationValidator

import (
	"claimit/middleware"
	"claimit/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateNotification validates the admin payload for a new ledger entry.
func CreateNotification() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID  uint   `json:"user_id"`
			Title   string `json:"title"`
			Message string `json:"message"`
			Type    string `json:"type"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["user_id"] = "User ID is required!"
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) > 200 {
			errors["title"] = "Title must not exceed 200 characters!"
		}

		reqData.Message = strings.TrimSpace(reqData.Message)
		if reqData.Message == "" {
			errors["message"] = "Message is required!"
		}

		reqData.Type = strings.ToLower(strings.TrimSpace(reqData.Type))
		if reqData.Type != "" && !models.ValidNotificationTypes[reqData.Type] {
			errors["type"] = "Invalid type! Allowed: success, warning, info, danger"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNotificationCreate", reqData)
		return c.Next()
	}
}

// NotificationList validates pagination query parameters.
func NotificationList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNotificationList", reqData)
		return c.Next()
	}
}

// MarkRead validates the single-row read receipt payload.
func MarkRead() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			NotificationID uint `json:"notification_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.NotificationID == 0 {
			errors["notification_id"] = "Notification ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNotificationMarkRead", reqData)
		return c.Next()
	}
}
