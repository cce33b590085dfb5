package notificationRoutes

import (
	notificationController "claimit/controllers/notificationControllers"
	"claimit/middleware"
	notificationValidator "claimit/validators/notificationValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notification")

	notificationGroup.Post("/admin/create", notificationValidator.CreateNotification(), middleware.JWTMiddleware, notificationController.CreateNotification)
	notificationGroup.Get("/list", notificationValidator.NotificationList(), middleware.JWTMiddleware, notificationController.NotificationList)
	notificationGroup.Get("/unread-count", middleware.JWTMiddleware, notificationController.UnreadCount)
	notificationGroup.Post("/mark-read", notificationValidator.MarkRead(), middleware.JWTMiddleware, notificationController.MarkRead)
	notificationGroup.Post("/mark-all-read", middleware.JWTMiddleware, notificationController.MarkAllRead)
	notificationGroup.Delete("/:id", middleware.JWTMiddleware, notificationController.DeleteNotification)
}
