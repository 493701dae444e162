package services

import (
	"log"
	"math"

	"study-dashboard-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SessionService assembles the signed-in session view: the stored profile
// merged with every derived stat the dashboard renders.
type SessionService struct {
	DB *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{DB: db}
}

// Me returns the session view for the token's subject. A valid token whose
// profile record is missing is a data-integrity anomaly: logged server-side,
// generic not-found to the client, never a crash.
func (s *SessionService) Me(c *fiber.Ctx) error {
	accountID := c.Locals("user_id").(string)

	var profile models.Profile
	if err := s.DB.Where("id = ?", accountID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Printf("[SESSION] integrity anomaly: signed-in account %s has no profile", accountID)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load profile",
			"cause": err.Error(),
		})
	}

	var account models.Account
	email := ""
	if err := s.DB.Where("id = ?", accountID).First(&account).Error; err == nil {
		email = account.Email
	}

	level := LevelFor(profile.XP)
	return c.JSON(fiber.Map{
		"id":                  profile.ID,
		"email":               email,
		"first_name":          profile.FirstName,
		"last_name":           profile.LastName,
		"xp":                  profile.XP,
		"rank_label":          profile.RankLabel,
		"level":               level,
		"progress_percent":    math.Round(ProgressPercent(profile.XP)*100) / 100,
		"xp_to_next":          XPToNext(profile.XP),
		"next_level":          level + 1,
		"secret_area_visible": SecretAreaVisible(profile.XP),
	})
}
