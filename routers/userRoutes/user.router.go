package userProfileRoutes

import (
	userProfileController "eduak/controllers/userControllers"
	"eduak/middleware"
	userPorfileValidator "eduak/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	app.Get("/profile", middleware.JWTMiddleware, userProfileController.GetProfile)
	app.Put("/profile", middleware.JWTMiddleware, userPorfileValidator.UpdateProfile(), userProfileController.UpdateProfile)
}
