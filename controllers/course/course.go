package controllers

import (
	"eduak/database"
	"eduak/middleware"
	"eduak/models"
	"eduak/responses"
	"eduak/services"
	"eduak/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// courseResponses renders courses with their student and module totals.
func courseResponses(db *gorm.DB, courses []models.Course) ([]responses.CourseResponse, error) {
	ids := make([]uint, 0, len(courses))
	for _, course := range courses {
		ids = append(ids, course.ID)
	}
	counts, err := services.CourseCounts(db, ids)
	if err != nil {
		return nil, err
	}

	out := make([]responses.CourseResponse, 0, len(courses))
	for i := range courses {
		n := counts[courses[i].ID]
		out = append(out, responses.Course(&courses[i], n.Students, n.Modules))
	}
	return out, nil
}

// courseDetail renders a single course with its modules.
func courseDetail(db *gorm.DB, courseID uint) (*responses.CourseResponse, error) {
	course, err := services.CourseWithModules(db, courseID)
	if err != nil {
		return nil, err
	}
	counts, err := services.CourseCounts(db, []uint{course.ID})
	if err != nil {
		return nil, err
	}
	n := counts[course.ID]
	if course.Modules == nil {
		course.Modules = []models.Module{}
	}
	out := responses.Course(course, n.Students, n.Modules)
	return &out, nil
}

func GetAllCourses(c *fiber.Ctx) error {
	query, _ := c.Locals("courseQuery").(services.CourseQuery)
	page := utils.ParsePage(c)
	db := database.Database.Db

	courses, total, err := services.ListCourses(db, query, page.Limit, page.Offset)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	results, err := courseResponses(db, courses)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course list.", utils.Paginated(total, page, results))
}

func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := courseDetail(database.Database.Db, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details.", course)
}
