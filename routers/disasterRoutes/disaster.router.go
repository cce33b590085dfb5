package disasterRoutes

import (
	disasterController "claimit/controllers/disasterControllers"
	"claimit/middleware"
	disasterValidator "claimit/validators/disasterValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupDisasterRoutes(app *fiber.App) {
	disasterGroup := app.Group("/disaster")

	disasterGroup.Get("/list", disasterValidator.DisasterList(), middleware.JWTMiddleware, disasterController.DisasterList)
	disasterGroup.Post("/admin/refresh", disasterValidator.RefreshDisasters(), middleware.JWTMiddleware, disasterController.RefreshDisasters)
}
