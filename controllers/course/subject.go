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

func ListSubjects(c *fiber.Ctx) error {
	page := utils.ParsePage(c)
	q := database.Database.Db.Model(&models.Subject{}).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var subjects []models.Subject
	if err := q.Order("title asc").Order("id asc").Limit(page.Limit).Offset(page.Offset).Find(&subjects).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}

	ids := make([]uint, 0, len(subjects))
	for _, s := range subjects {
		ids = append(ids, s.ID)
	}
	counts, err := services.SubjectCourseCounts(database.Database.Db, ids)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	results := make([]responses.SubjectResponse, 0, len(subjects))
	for i := range subjects {
		results = append(results, responses.Subject(&subjects[i], counts[subjects[i].ID]))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject list.", utils.Paginated(total, page, results))
}

// GetSubject returns the subject title and a page of its courses.
func GetSubject(c *fiber.Ctx) error {
	db := database.Database.Db

	subject, err := services.FindSubjectBySlug(db, c.Params("slug"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	page := utils.ParsePage(c)
	courses, total, err := services.ListCourses(db, services.CourseQuery{SubjectSlug: subject.Slug}, page.Limit, page.Offset)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	results, err := courseResponses(db, courses)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject details.", fiber.Map{
		"subject": subject.Title,
		"courses": utils.Paginated(total, page, results),
	})
}
