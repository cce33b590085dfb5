package userProfileRoutes

import (
	userProfileController "claimit/controllers/userControllers"
	"claimit/middleware"
	userProfileValidator "claimit/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userProfileController.GetProfile)
	userGroup.Get("/profile/:id", middleware.JWTMiddleware, userProfileController.GetProfileByID)
	userGroup.Put("/profile", userProfileValidator.UpdateProfile(), middleware.JWTMiddleware, userProfileController.UpdateProfile)
}
