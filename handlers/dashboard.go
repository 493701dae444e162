package handlers

import (
	"study-dashboard-system/middleware"
	"study-dashboard-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, sessionService *services.SessionService, preferenceService *services.PreferenceService, rankingService *services.RankingService) {
	// 🔐 Session view + preferences
	secured := app.Group("/", middleware.UserContextMiddleware())
	secured.Get("/me", sessionService.Me)
	secured.Get("/me/preferences/theme", preferenceService.GetTheme)
	secured.Put("/me/preferences/theme", preferenceService.SetTheme)
	secured.Get("/ranking", rankingService.GetRanking)

	// Live streams authenticate via query token (EventSource limitation)
	streams := app.Group("/streams", middleware.SSEAuthMiddleware())
	streams.Get("/ranking", rankingService.StreamRanking)
}
