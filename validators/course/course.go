package courseValidator

import (
	"eduak/middleware"
	"eduak/services"
	"eduak/validators"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type CourseRequest struct {
	Subject  uint   `json:"subject" form:"subject" validate:"required"`
	Title    string `json:"title" form:"title" validate:"required,max=200"`
	Overview string `json:"overview" form:"overview"`
}

type ModuleRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=200"`
	Description string `json:"description" form:"description"`
	Order       *int   `json:"order" form:"order" validate:"omitempty,gte=0"`
}

// CourseList reads catalog filters from the query string.
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := services.CourseQuery{
			SubjectSlug: strings.TrimSpace(c.Query("subject__slug")),
			OwnerName:   strings.TrimSpace(c.Query("owner__name")),
			Search:      c.Query("search"),
			Ordering:    c.Query("ordering"),
		}
		c.Locals("courseQuery", query)
		return c.Next()
	}
}

// CourseInput validates the body of course create and update requests.
func CourseInput() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Title = strings.TrimSpace(reqData.Title)

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// ModuleInput validates the body of module create and update requests.
func ModuleInput() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Title = strings.TrimSpace(reqData.Title)

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}
