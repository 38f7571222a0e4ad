package userValidator

import (
	"eduak/middleware"
	"eduak/validators"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	Name   *string                `json:"name" validate:"omitempty,max=150"`
	Phone  *string                `json:"phone" validate:"omitempty,max=20"`
	Bio    *string                `json:"bio" validate:"omitempty,max=2000"`
	Avatar *string                `json:"avatar" validate:"omitempty,url"`
	Links  map[string]interface{} `json:"links"`
}

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if reqData.Name != nil {
			trimmed := strings.TrimSpace(*reqData.Name)
			reqData.Name = &trimmed
		}

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
