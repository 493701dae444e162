package services

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// defaultTheme applies until the user toggles.
const defaultTheme = "light"

// PreferenceService persists per-user UI preferences in Redis. Today that is
// a single "theme" key.
type PreferenceService struct {
	RDB *redis.Client
}

func NewPreferenceService(rdb *redis.Client) *PreferenceService {
	return &PreferenceService{RDB: rdb}
}

func themeKey(accountID string) string {
	return fmt.Sprintf("pref:%s:theme", accountID)
}

// GetTheme reads the stored theme, defaulting to light.
func (s *PreferenceService) GetTheme(c *fiber.Ctx) error {
	accountID := c.Locals("user_id").(string)

	theme, err := s.RDB.Get(context.Background(), themeKey(accountID)).Result()
	if err == redis.Nil {
		theme = defaultTheme
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read preference",
			"cause": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"theme": theme})
}

// SetTheme stores the toggled theme. Only "dark" and "light" are accepted.
func (s *PreferenceService) SetTheme(c *fiber.Ctx) error {
	accountID := c.Locals("user_id").(string)

	var req struct {
		Theme string `json:"theme"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON",
			"cause": err.Error(),
		})
	}
	if req.Theme != "dark" && req.Theme != "light" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "theme must be dark or light",
		})
	}

	if err := s.RDB.Set(context.Background(), themeKey(accountID), req.Theme, 0).Err(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to store preference",
			"cause": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"theme": req.Theme})
}
