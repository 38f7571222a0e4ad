package middleware

import (
	"eduak/database"
	"eduak/models"
	"eduak/policies"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that only lets users with role through.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return ErrorResponse(c, err)
		}
		if err := policies.RequireRole(user, role); err != nil {
			return ErrorResponse(c, err)
		}
		return c.Next()
	}
}

// ParamID parses a positive integer route parameter.
func ParamID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// CourseOwner loads the course named by the :pk parameter and rejects anyone
// but its owner. The course is stored in Locals under "course".
func CourseOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return ErrorResponse(c, err)
		}

		courseID, ok := ParamID(c, "pk")
		if !ok {
			return ErrorResponse(c, policies.ErrCourseNotFound)
		}

		var course models.Course
		err = database.Database.Db.First(&course, courseID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrorResponse(c, policies.ErrCourseNotFound)
		}
		if err != nil {
			return ErrorResponse(c, err)
		}

		if err := policies.CanMutate(user, &course); err != nil {
			return ErrorResponse(c, err)
		}

		c.Locals("course", &course)
		return c.Next()
	}
}
