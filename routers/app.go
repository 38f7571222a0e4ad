// Package routers assembles the fiber application.
package routers

import (
	"eduak/config"
	"eduak/middleware"
	authRoutes "eduak/routers/authRoutes"
	courseRoutes "eduak/routers/courseRoutes"
	userProfileRoutes "eduak/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the application with every route registered. The request
// logger is left out when quiet is set.
func NewApp(quiet bool) *fiber.App {
	cfg := fiber.Config{
		AppName:      "eduak",
		ErrorHandler: middleware.ErrorHandler,
	}
	// c.IP() honours the proxy header only for requests from a trusted proxy
	if proxies := config.AppConfig.TrustedProxies; len(proxies) > 0 {
		cfg.ProxyHeader = config.AppConfig.ProxyHeader
		cfg.EnableTrustedProxyCheck = true
		cfg.TrustedProxies = proxies
	}
	app := fiber.New(cfg)

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	if !quiet {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
		}))
	}

	authRoutes.SetupAuthRoutes(app)
	userProfileRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupTeacherRoutes(app)

	return app
}
