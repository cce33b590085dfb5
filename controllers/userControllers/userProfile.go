package userController

import (
	"claimit/database"
	"claimit/middleware"
	"claimit/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the caller's own profile.
func GetProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var profile models.UserProfile
	if err := database.Database.Db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"user":    user,
		"profile": profile,
	})
}

// GetProfileByID returns another user's profile. Only the owner or an admin
// may see it; everyone else gets a 404 so foreign profile ids stay opaque.
func GetProfileByID(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	targetID, err := c.ParamsInt("id")
	if err != nil || targetID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid profile id!", nil)
	}

	if !middleware.CanAccess(user, uint(targetID)) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	var profile models.UserProfile
	if err := database.Database.Db.Where("user_id = ?", targetID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", profile)
}

// UpdateProfile mutates the caller's own profile fields.
func UpdateProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfileUpdate").(*struct {
		PhoneNumber      *string `json:"phone_number"`
		Street           *string `json:"street"`
		City             *string `json:"city"`
		State            *string `json:"state"`
		Country          *string `json:"country"`
		PostalCode       *string `json:"postal_code"`
		EmergencyContact *string `json:"emergency_contact"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var profile models.UserProfile
	if err := database.Database.Db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	if reqData.PhoneNumber != nil {
		profile.PhoneNumber = *reqData.PhoneNumber
	}
	if reqData.Street != nil {
		profile.Street = *reqData.Street
	}
	if reqData.City != nil {
		profile.City = *reqData.City
	}
	if reqData.State != nil {
		profile.State = *reqData.State
	}
	if reqData.Country != nil {
		profile.Country = *reqData.Country
	}
	if reqData.PostalCode != nil {
		profile.PostalCode = *reqData.PostalCode
	}
	if reqData.EmergencyContact != nil {
		profile.EmergencyContact = *reqData.EmergencyContact
	}

	if err := database.Database.Db.Save(&profile).Error; err != nil {
		log.Printf("Error updating profile for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", profile)
}
