package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SSEAuthMiddleware validates the access token from the `token` query param.
// EventSource cannot set request headers, so live streams authenticate via
// the query string instead.
//
// Usage:
//
//	app.Get("/streams/tasks", middleware.SSEAuthMiddleware(), taskService.StreamTasks)
func SSEAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(c.Query("token"))
		if token == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "missing token in query",
			})
		}

		accountID, err := parseAccessToken(token)
		if err != nil {
			log.Printf("[SSE_AUTH] rejected stream on %s: %v", c.Path(), err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		c.Locals("user_id", accountID)
		return c.Next()
	}
}
