package disasterValidator

import (
	"claimit/middleware"
	"claimit/models"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var stateCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)

// DisasterList validates pagination and filter query parameters.
func DisasterList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page         *int    `query:"page"`
			Limit        *int    `query:"limit"`
			DisasterType *string `query:"disaster_type"`
			Severity     *int    `query:"severity"`
			Location     *string `query:"location"`
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
		if reqData.DisasterType != nil && *reqData.DisasterType != "" {
			if !models.ValidDisasterTypes[strings.ToLower(*reqData.DisasterType)] {
				errors["disaster_type"] = "Invalid disaster type!"
			}
		}
		if reqData.Severity != nil && (*reqData.Severity < models.SeverityLow || *reqData.Severity > models.SeverityUnknown) {
			errors["severity"] = "Severity must be between 1 and 4!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDisasterList", reqData)
		return c.Next()
	}
}

// RefreshDisasters validates the optional state filter for a manual refresh.
func RefreshDisasters() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			States []string `json:"states"`
		})

		// Body is optional; an empty body means "use the configured filter".
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		errors := make(map[string]string)

		for i, state := range reqData.States {
			state = strings.ToUpper(strings.TrimSpace(state))
			if !stateCodeRe.MatchString(state) {
				errors["states"] = "States must be two-letter codes!"
				break
			}
			reqData.States[i] = state
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDisasterRefresh", reqData)
		return c.Next()
	}
}
