package courseRoutes

import (
	controllers "eduak/controllers/course"
	"eduak/middleware"
	"eduak/models"
	validators "eduak/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupTeacherRoutes sets up course and module management for teachers.
// Ownership is checked before the body is validated.
func SetupTeacherRoutes(app *fiber.App) {
	teacherGroup := app.Group("/teacher/courses", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher))

	teacherGroup.Get("/", controllers.TeacherListCourses)
	teacherGroup.Post("/create", validators.CourseInput(), controllers.TeacherCreateCourse)

	owned := middleware.CourseOwner()
	teacherGroup.Get("/:pk", owned, controllers.TeacherGetCourse)
	teacherGroup.Put("/:pk", owned, validators.CourseInput(), controllers.TeacherUpdateCourse)
	teacherGroup.Put("/:pk/update", owned, validators.CourseInput(), controllers.TeacherUpdateCourse)
	teacherGroup.Delete("/:pk/delete", owned, controllers.TeacherDeleteCourse)

	// Modules
	teacherGroup.Get("/:pk/modules", owned, controllers.TeacherListModules)
	teacherGroup.Post("/:pk/modules/create", owned, validators.ModuleInput(), controllers.TeacherCreateModule)
	teacherGroup.Put("/:pk/modules/:mid", owned, validators.ModuleInput(), controllers.TeacherUpdateModule)
	teacherGroup.Delete("/:pk/modules/:mid/delete", owned, controllers.TeacherDeleteModule)
}
