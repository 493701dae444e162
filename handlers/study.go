package handlers

import (
	"study-dashboard-system/middleware"
	"study-dashboard-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupStudyRoutes(app *fiber.App, gradeService *services.GradeService, noteService *services.NoteService, chatService *services.ChatService) {
	// 🔐 Append-only feature writes + point reads
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Post("/grades", gradeService.AddGrade)
	secured.Get("/grades", gradeService.ListGrades)
	secured.Post("/grades/manual-average", gradeService.ManualAverage)

	secured.Post("/notes", noteService.AddNote)
	secured.Get("/notes", noteService.ListNotes)

	secured.Post("/chat", chatService.SendMessage)
	secured.Get("/chat", chatService.ListMessages)

	// Live snapshot streams
	streams := app.Group("/streams", middleware.SSEAuthMiddleware())
	streams.Get("/grades", gradeService.StreamGrades)
	streams.Get("/notes", noteService.StreamNotes)
	streams.Get("/chat", chatService.StreamChat)
}
