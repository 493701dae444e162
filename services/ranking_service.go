package services

import (
	"fmt"
	"sort"

	"study-dashboard-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// leaderboardSize caps the ranking at the top N profiles by XP.
const leaderboardSize = 10

var medals = []string{"🥇", "🥈", "🥉"}

// RankingService projects profiles into the leaderboard: top 10 by XP,
// medals for the podium, numeric ranks below it.
type RankingService struct {
	DB       *gorm.DB
	Registry *StreamRegistry
}

func NewRankingService(db *gorm.DB, registry *StreamRegistry) *RankingService {
	return &RankingService{DB: db, Registry: registry}
}

// RankedEntry is one leaderboard row as rendered.
type RankedEntry struct {
	Position  int    `json:"position"`
	Medal     string `json:"medal"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	XP        int64  `json:"xp"`
	Level     int    `json:"level"`
}

// BuildLeaderboard re-sorts defensively (the store's order-by may be
// ascending or unstable) and annotates positions. Podium gets medal glyphs,
// the rest a numeric "#n" label.
func BuildLeaderboard(profiles []models.Profile) []RankedEntry {
	sorted := make([]models.Profile, len(profiles))
	copy(sorted, profiles)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].XP > sorted[j].XP })

	entries := make([]RankedEntry, 0, len(sorted))
	for i, p := range sorted {
		medal := fmt.Sprintf("#%d", i+1)
		if i < len(medals) {
			medal = medals[i]
		}
		entries = append(entries, RankedEntry{
			Position:  i + 1,
			Medal:     medal,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			XP:        p.XP,
			Level:     LevelFor(p.XP),
		})
	}
	return entries
}

// GetRanking is the point-read counterpart of the live stream.
func (s *RankingService) GetRanking(c *fiber.Ctx) error {
	profiles, err := s.topProfiles()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load ranking",
			"cause": err.Error(),
		})
	}
	return c.JSON(BuildLeaderboard(profiles))
}

// StreamRanking pushes the full leaderboard on every change.
func (s *RankingService) StreamRanking(c *fiber.Ctx) error {
	return StreamSnapshots(c, s.Registry, FeatureRanking, func(accountID string) (interface{}, string, error) {
		profiles, err := s.topProfiles()
		if err != nil {
			return nil, "", err
		}
		board := BuildLeaderboard(profiles)
		version := "0"
		for _, e := range board {
			version += fmt.Sprintf("|%s%s:%d", e.FirstName, e.LastName, e.XP)
		}
		return board, version, nil
	})
}

func (s *RankingService) topProfiles() ([]models.Profile, error) {
	profiles := []models.Profile{}
	err := s.DB.Order("xp DESC").Limit(leaderboardSize).Find(&profiles).Error
	return profiles, err
}
