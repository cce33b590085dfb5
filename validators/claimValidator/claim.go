package claimValidator

import (
	"claimit/middleware"
	"claimit/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateClaim validates the multipart claim submission form. File checks
// happen in the controller because rejection must abort the whole create.
func CreateClaim() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			DisasterType  string
			PropertyType  string
			Description   string
			EstimatedLoss float64
		})

		reqData.DisasterType = strings.ToLower(strings.TrimSpace(c.FormValue("disaster_type")))
		reqData.PropertyType = strings.ToLower(strings.TrimSpace(c.FormValue("property_type")))
		reqData.Description = strings.TrimSpace(c.FormValue("description"))
		lossRaw := strings.TrimSpace(c.FormValue("estimated_loss"))

		errors := make(map[string]string)

		if !models.ValidDisasterTypes[reqData.DisasterType] {
			errors["disaster_type"] = "Invalid disaster type! Allowed: wildfire, flood, earthquake, hurricane, tornado, other"
		}
		if !models.ValidPropertyTypes[reqData.PropertyType] {
			errors["property_type"] = "Invalid property type! Allowed: automobile, house, business, other"
		}
		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}

		if lossRaw == "" {
			errors["estimated_loss"] = "Estimated loss is required!"
		} else {
			loss, err := strconv.ParseFloat(lossRaw, 64)
			if err != nil || loss < 0 {
				errors["estimated_loss"] = "Estimated loss must be a non-negative amount!"
			} else if loss > 99999999.99 {
				errors["estimated_loss"] = "Estimated loss exceeds the supported range!"
			} else {
				reqData.EstimatedLoss = loss
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClaimCreate", reqData)
		return c.Next()
	}
}

// ClaimList validates pagination and filter query parameters.
func ClaimList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page         *int    `query:"page"`
			Limit        *int    `query:"limit"`
			Status       *string `query:"status"`
			DisasterType *string `query:"disaster_type"`
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

		if reqData.Status != nil && *reqData.Status != "" {
			valid := map[string]bool{
				models.StatusPending:     true,
				models.StatusUnderReview: true,
				models.StatusApproved:    true,
				models.StatusRejected:    true,
				models.StatusSettled:     true,
			}
			if !valid[strings.ToLower(*reqData.Status)] {
				errors["status"] = "Invalid status! Must be one of: pending, under_review, approved, rejected, settled."
			}
		}
		if reqData.DisasterType != nil && *reqData.DisasterType != "" {
			if !models.ValidDisasterTypes[strings.ToLower(*reqData.DisasterType)] {
				errors["disaster_type"] = "Invalid disaster type!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClaimList", reqData)
		return c.Next()
	}
}

// UpdateClaim validates an owner's amendment of a pending claim. All fields
// optional; server-assigned fields are not even parsed.
func UpdateClaim() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			DisasterType  *string  `json:"disaster_type"`
			PropertyType  *string  `json:"property_type"`
			Description   *string  `json:"description"`
			EstimatedLoss *float64 `json:"estimated_loss"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.DisasterType != nil {
			*reqData.DisasterType = strings.ToLower(strings.TrimSpace(*reqData.DisasterType))
			if !models.ValidDisasterTypes[*reqData.DisasterType] {
				errors["disaster_type"] = "Invalid disaster type!"
			}
		}
		if reqData.PropertyType != nil {
			*reqData.PropertyType = strings.ToLower(strings.TrimSpace(*reqData.PropertyType))
			if !models.ValidPropertyTypes[*reqData.PropertyType] {
				errors["property_type"] = "Invalid property type!"
			}
		}
		if reqData.Description != nil && strings.TrimSpace(*reqData.Description) == "" {
			errors["description"] = "Description cannot be empty!"
		}
		if reqData.EstimatedLoss != nil && (*reqData.EstimatedLoss < 0 || *reqData.EstimatedLoss > 99999999.99) {
			errors["estimated_loss"] = "Estimated loss must be a non-negative amount within the supported range!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClaimUpdate", reqData)
		return c.Next()
	}
}

// UpdateClaimStatus validates the admin adjudication payload.
func UpdateClaimStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClaimID uint   `json:"claim_id"`
			Status  string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ClaimID == 0 {
			errors["claim_id"] = "Claim ID is required!"
		}

		reqData.Status = strings.ToLower(strings.TrimSpace(reqData.Status))
		valid := map[string]bool{
			models.StatusUnderReview: true,
			models.StatusApproved:    true,
			models.StatusRejected:    true,
			models.StatusSettled:     true,
		}
		if !valid[reqData.Status] {
			errors["status"] = "Invalid status! Must be one of: under_review, approved, rejected, settled."
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClaimStatus", reqData)
		return c.Next()
	}
}

// UpdateClaimPrediction validates the scoring payload.
func UpdateClaimPrediction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClaimID           uint     `json:"claim_id"`
			PredictedApproval *float64 `json:"predicted_approval"`
			PredictedLimit    *float64 `json:"predicted_limit"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ClaimID == 0 {
			errors["claim_id"] = "Claim ID is required!"
		}
		if reqData.PredictedApproval == nil && reqData.PredictedLimit == nil {
			errors["predicted_approval"] = "At least one prediction field is required!"
		}
		if reqData.PredictedApproval != nil && (*reqData.PredictedApproval < 0 || *reqData.PredictedApproval > 1) {
			errors["predicted_approval"] = "Predicted approval must be between 0.00 and 1.00!"
		}
		if reqData.PredictedLimit != nil && *reqData.PredictedLimit < 0 {
			errors["predicted_limit"] = "Predicted limit must be non-negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClaimPrediction", reqData)
		return c.Next()
	}
}
