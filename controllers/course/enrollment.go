package controllers

import (
	"context"
	"eduak/database"
	"eduak/logger"
	"eduak/mailer"
	"eduak/middleware"
	"eduak/models"
	"eduak/policies"
	"eduak/services"
	"eduak/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const mailTimeout = 15 * time.Second

// EnrollInCourse runs behind OptionalJWTMiddleware so a missing course is
// reported before a missing login.
func EnrollInCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var user *models.User
	if _, ok := c.Locals("userId").(uint); ok {
		u, err := middleware.CurrentUser(c)
		if err != nil && policies.KindOf(err) != policies.KindUnauthenticated {
			return middleware.ErrorResponse(c, err)
		}
		user = u
	}

	course, err := services.Enroll(database.Database.Db, user, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	go notifyEnrollment(user.Email, user.Name, course.Title)

	logger.Log.Info("student enrolled", zap.Uint("userId", user.ID), zap.Uint("courseId", course.ID))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled successfully.", fiber.Map{"enrolled": true})
}

func notifyEnrollment(email, name, courseTitle string) {
	ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
	defer cancel()
	subject, body := mailer.EnrollmentEmail(name, courseTitle)
	if err := mailer.Default.Send(ctx, []string{email}, subject, body); err != nil {
		logger.Log.Warn("Failed to send enrollment email", zap.String("email", email), zap.Error(err))
	}
}

func GetEnrolledCourses(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	page := utils.ParsePage(c)
	db := database.Database.Db

	courses, total, err := services.EnrolledCourses(db, user.ID, page.Limit, page.Offset)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	results, err := courseResponses(db, courses)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses.", utils.Paginated(total, page, results))
}

// GetStudentCourse shows a course with its modules to an enrolled student.
func GetStudentCourse(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	course, err := services.FindCourse(db, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	enrolled, err := services.IsEnrolled(db, course.ID, user.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if err := policies.CanView(user, course, enrolled); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	detail, err := courseDetail(db, course.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course content.", detail)
}
