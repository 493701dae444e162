package handlers

import (
	"study-dashboard-system/middleware"
	"study-dashboard-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, authService *services.AuthService) {
	// 🔓 Public entry points
	app.Post("/auth/register", authService.Register)
	app.Post("/auth/login", authService.Login)

	// 🔐 Logout needs the session it tears down
	secured := app.Group("/", middleware.UserContextMiddleware())
	secured.Post("/auth/logout", authService.Logout)
}
