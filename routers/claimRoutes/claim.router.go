package claimRoutes

import (
	claimController "claimit/controllers/claimControllers"
	"claimit/middleware"
	claimValidator "claimit/validators/claimValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupClaimRoutes(app *fiber.App) {
	claimGroup := app.Group("/claim")

	claimGroup.Post("/create", claimValidator.CreateClaim(), middleware.JWTMiddleware, claimController.CreateClaim)
	claimGroup.Get("/list", claimValidator.ClaimList(), middleware.JWTMiddleware, claimController.ClaimList)
	claimGroup.Get("/admin/stats", middleware.JWTMiddleware, claimController.AdminClaimStats)
	claimGroup.Post("/admin/status", claimValidator.UpdateClaimStatus(), middleware.JWTMiddleware, claimController.UpdateClaimStatus)
	claimGroup.Post("/admin/prediction", claimValidator.UpdateClaimPrediction(), middleware.JWTMiddleware, claimController.UpdateClaimPrediction)
	claimGroup.Get("/:id", middleware.JWTMiddleware, claimController.GetClaim)
	claimGroup.Put("/:id", claimValidator.UpdateClaim(), middleware.JWTMiddleware, claimController.UpdateClaim)
	claimGroup.Delete("/:id", middleware.JWTMiddleware, claimController.DeleteClaim)
}
