package controllers

import (
	"eduak/database"
	"eduak/logger"
	"eduak/middleware"
	"eduak/models"
	"eduak/policies"
	"eduak/services"
	courseValidator "eduak/validators/course"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// subjectExists reports whether id names a subject.
func subjectExists(db *gorm.DB, id uint) (bool, error) {
	var n int64
	err := db.Model(&models.Subject{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func unknownSubject(c *fiber.Ctx) error {
	return middleware.ValidationErrorResponse(c, map[string]string{"subject": "Subject does not exist"})
}

// TeacherListCourses returns every course the caller owns.
func TeacherListCourses(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	db := database.Database.Db

	var courses []models.Course
	if err := db.Preload("Owner").Preload("Subject").
		Where("owner_id = ?", user.ID).
		Order(services.OrderBy("")[0]).
		Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	results, err := courseResponses(db, courses)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Your courses.", results)
}

func TeacherCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	// the owner must be a teacher
	if err := policies.RequireRole(user, models.RoleTeacher); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	db := database.Database.Db
	exists, err := subjectExists(db, reqData.Subject)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if !exists {
		return unknownSubject(c)
	}

	course := models.Course{
		OwnerID:   user.ID,
		SubjectID: reqData.Subject,
		Title:     reqData.Title,
		Overview:  reqData.Overview,
	}
	if err := db.Create(&course).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	logger.Log.Info("course created", zap.Uint("courseId", course.ID), zap.Uint("ownerId", user.ID))
	detail, err := courseDetail(db, course.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", detail)
}

func TeacherGetCourse(c *fiber.Ctx) error {
	course := c.Locals("course").(*models.Course)

	detail, err := courseDetail(database.Database.Db, course.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details.", detail)
}

func TeacherUpdateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	course := c.Locals("course").(*models.Course)
	db := database.Database.Db

	exists, err := subjectExists(db, reqData.Subject)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if !exists {
		return unknownSubject(c)
	}

	updates := map[string]interface{}{
		"subject_id": reqData.Subject,
		"title":      reqData.Title,
		"overview":   reqData.Overview,
	}
	if err := db.Model(course).Updates(updates).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	detail, err := courseDetail(db, course.ID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", detail)
}

// TeacherDeleteCourse removes the course together with its modules and
// enrollments.
func TeacherDeleteCourse(c *fiber.Ctx) error {
	course := c.Locals("course").(*models.Course)

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.CourseStudent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Module{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Course{}, course.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return policies.ErrCourseNotFound
		}
		return nil
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	logger.Log.Info("course deleted", zap.Uint("courseId", course.ID))
	return c.SendStatus(fiber.StatusNoContent)
}
