package authRoutes

import (
	authControllers "eduak/controllers/auth"
	"eduak/middleware"
	authValidators "eduak/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/register", authValidators.Register(), authControllers.Register)
	app.Post("/login", authValidators.Login(), authControllers.Login)
	app.Get("/login/history", middleware.JWTMiddleware, authControllers.LoginHistoryList)

	otpGroup := app.Group("/otp")
	otpGroup.Post("/send", authValidators.SendOTP(), authControllers.SendOTP)
	otpGroup.Post("/verify", authValidators.VerifyOTP(), authControllers.VerifyOTP)
}
