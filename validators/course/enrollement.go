package courseValidator

import (
	"eduak/middleware"
	"eduak/policies"

	"github.com/gofiber/fiber/v2"
)

// CourseID parses the :pk route parameter. Anything that is not a positive
// integer cannot name a course, so it is answered as not found.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := middleware.ParamID(c, "pk")
		if !ok {
			return middleware.ErrorResponse(c, policies.ErrCourseNotFound)
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}
