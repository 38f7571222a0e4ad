package courseRoutes

import (
	controllers "eduak/controllers/course"
	"eduak/middleware"
	validators "eduak/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog and the student routes
func SetupCourseRoutes(app *fiber.App) {
	// Catalog, open to anonymous callers
	subjectGroup := app.Group("/subjects")
	subjectGroup.Get("/", controllers.ListSubjects)
	subjectGroup.Get("/:slug", controllers.GetSubject)

	courseGroup := app.Group("/courses")
	courseGroup.Get("/", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:pk", validators.CourseID(), controllers.GetCourseDetails)

	// Student
	studentGroup := app.Group("/student/courses")
	studentGroup.Get("/enrolled", middleware.JWTMiddleware, controllers.GetEnrolledCourses)
	studentGroup.Post("/:pk/enroll", middleware.OptionalJWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)
	studentGroup.Get("/:pk", middleware.JWTMiddleware, validators.CourseID(), controllers.GetStudentCourse)
}
