package userValidator

import (
	"claimit/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var postalCodeRe = regexp.MustCompile(`^[A-Za-z0-9 -]{3,10}$`)

// UpdateProfile validates a partial profile update. All fields are optional;
// present fields must be well-formed.
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PhoneNumber      *string `json:"phone_number"`
			Street           *string `json:"street"`
			City             *string `json:"city"`
			State            *string `json:"state"`
			Country          *string `json:"country"`
			PostalCode       *string `json:"postal_code"`
			EmergencyContact *string `json:"emergency_contact"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PhoneNumber != nil {
			*reqData.PhoneNumber = strings.TrimSpace(*reqData.PhoneNumber)
			if len(*reqData.PhoneNumber) > 20 {
				errors["phone_number"] = "Phone number must not exceed 20 characters!"
			}
		}
		if reqData.Street != nil && len(*reqData.Street) > 200 {
			errors["street"] = "Street must not exceed 200 characters!"
		}
		if reqData.City != nil && len(*reqData.City) > 100 {
			errors["city"] = "City must not exceed 100 characters!"
		}
		if reqData.State != nil {
			*reqData.State = strings.ToUpper(strings.TrimSpace(*reqData.State))
			if *reqData.State != "" && len(*reqData.State) != 2 {
				errors["state"] = "State must be a two-letter region code!"
			}
		}
		if reqData.Country != nil && len(*reqData.Country) > 100 {
			errors["country"] = "Country must not exceed 100 characters!"
		}
		if reqData.PostalCode != nil {
			*reqData.PostalCode = strings.TrimSpace(*reqData.PostalCode)
			if *reqData.PostalCode != "" && !postalCodeRe.MatchString(*reqData.PostalCode) {
				errors["postal_code"] = "Invalid postal code!"
			}
		}
		if reqData.EmergencyContact != nil && len(*reqData.EmergencyContact) > 100 {
			errors["emergency_contact"] = "Emergency contact must not exceed 100 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfileUpdate", reqData)
		return c.Next()
	}
}
