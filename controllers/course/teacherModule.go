package controllers

import (
	"eduak/database"
	"eduak/middleware"
	"eduak/models"
	"eduak/policies"
	"eduak/responses"
	"eduak/services"
	courseValidator "eduak/validators/course"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// courseModule loads module :mid of the course already resolved by CourseOwner.
func courseModule(c *fiber.Ctx, course *models.Course) (*models.Module, error) {
	moduleID, ok := middleware.ParamID(c, "mid")
	if !ok {
		return nil, policies.ErrModuleNotFound
	}
	var module models.Module
	err := database.Database.Db.Where("id = ? AND course_id = ?", moduleID, course.ID).First(&module).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, policies.ErrModuleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &module, nil
}

func TeacherListModules(c *fiber.Ctx) error {
	course := c.Locals("course").(*models.Course)

	var modules []models.Module
	if err := database.Database.Db.Where("course_id = ?", course.ID).
		Order("position asc").Order("id asc").
		Find(&modules).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module list.", responses.Modules(modules))
}

// TeacherCreateModule appends the module after the last one unless an
// explicit order is given.
func TeacherCreateModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModule").(*courseValidator.ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	course := c.Locals("course").(*models.Course)
	db := database.Database.Db

	module := models.Module{
		CourseID:    course.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
	}
	if reqData.Order != nil {
		module.Order = *reqData.Order
	} else {
		next, err := services.NextModuleOrder(db, course.ID)
		if err != nil {
			return middleware.ErrorResponse(c, err)
		}
		module.Order = next
	}

	if err := db.Create(&module).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully.", responses.Module(&module))
}

func TeacherUpdateModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModule").(*courseValidator.ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	course := c.Locals("course").(*models.Course)

	module, err := courseModule(c, course)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	updates := map[string]interface{}{
		"title":       reqData.Title,
		"description": reqData.Description,
	}
	if reqData.Order != nil {
		updates["position"] = *reqData.Order
	}
	if err := database.Database.Db.Model(module).Updates(updates).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}
	module.Title = reqData.Title
	module.Description = reqData.Description
	if reqData.Order != nil {
		module.Order = *reqData.Order
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully.", responses.Module(module))
}

func TeacherDeleteModule(c *fiber.Ctx) error {
	course := c.Locals("course").(*models.Course)

	module, err := courseModule(c, course)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if err := database.Database.Db.Delete(module).Error; err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
