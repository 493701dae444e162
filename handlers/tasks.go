package handlers

import (
	"study-dashboard-system/middleware"
	"study-dashboard-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTaskRoutes(app *fiber.App, taskService *services.TaskService) {
	// 🔐 Task CRUD — completion is the only XP source
	secured := app.Group("/", middleware.UserContextMiddleware())
	secured.Post("/tasks", taskService.AddTask)
	secured.Get("/tasks", taskService.ListTasks)
	secured.Post("/tasks/:id/complete", taskService.CompleteTask)

	// Live list + independent counter badge
	streams := app.Group("/streams", middleware.SSEAuthMiddleware())
	streams.Get("/tasks", taskService.StreamTasks)
	streams.Get("/tasks/counter", taskService.StreamTaskCounter)
}
