package services

import (
	"fmt"
	"math"

	"study-dashboard-system/models"
	"study-dashboard-system/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GradeService records exam results (append-only) and recomputes the class
// average on every change. It also hosts the manual weighted-average
// calculator, whose rows are transient and never persisted.
type GradeService struct {
	DB       *gorm.DB
	Registry *StreamRegistry
}

func NewGradeService(db *gorm.DB, registry *StreamRegistry) *GradeService {
	return &GradeService{DB: db, Registry: registry}
}

type addGradeRequest struct {
	Subject  string   `json:"subject"`
	ExamName string   `json:"exam_name" validate:"required"`
	Value    *float64 `json:"value" validate:"required"`
}

// AddGrade appends an exam result. There is no update or delete.
func (s *GradeService) AddGrade(c *fiber.Ctx) error {
	accountID := c.Locals("user_id").(string)

	var req addGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON",
			"cause": err.Error(),
		})
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return c.Status(utils.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	grade := models.Grade{
		OwnerID:  accountID,
		Subject:  req.Subject,
		ExamName: req.ExamName,
		Value:    *req.Value,
	}
	if err := s.DB.Create(&grade).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save grade",
			"cause": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(grade)
}

// gradeSnapshot is the full view pushed on every change: the entries plus
// the recomputed class average, rounded to 2 decimals for display only.
type gradeSnapshot struct {
	Entries      []models.Grade `json:"entries"`
	ClassAverage *float64       `json:"class_average,omitempty"`
	Empty        bool           `json:"empty"`
}

func buildGradeSnapshot(entries []models.Grade) gradeSnapshot {
	snap := gradeSnapshot{Entries: entries, Empty: len(entries) == 0}
	values := make([]float64, len(entries))
	for i, g := range entries {
		values[i] = g.Value
	}
	if avg, ok := ClassAverage(values); ok {
		rounded := math.Round(avg*100) / 100
		snap.ClassAverage = &rounded
	}
	return snap
}

// ListGrades is the point-read counterpart of the live stream.
func (s *GradeService) ListGrades(c *fiber.Ctx) error {
	accountID := c.Locals("user_id").(string)

	entries, err := s.ownerGrades(accountID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list grades",
			"cause": err.Error(),
		})
	}
	return c.JSON(buildGradeSnapshot(entries))
}

// StreamGrades pushes the full grade view on every change.
func (s *GradeService) StreamGrades(c *fiber.Ctx) error {
	return StreamSnapshots(c, s.Registry, FeatureGrades, func(accountID string) (interface{}, string, error) {
		entries, err := s.ownerGrades(accountID)
		if err != nil {
			return nil, "", err
		}
		version := "0"
		if n := len(entries); n > 0 {
			version = fmt.Sprintf("%d@%d", n, entries[n-1].CreatedAt.UnixNano())
		}
		return buildGradeSnapshot(entries), version, nil
	})
}

// ManualAverage evaluates the transient (value, weight) calculator rows.
// Rows that do not parse are skipped; a weight total other than 100 yields a
// warning but the result is still returned.
func (s *GradeService) ManualAverage(c *fiber.Ctx) error {
	var req struct {
		Pairs []WeightedPair `json:"pairs"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON",
			"cause": err.Error(),
		})
	}

	result, warning := WeightedAverage(req.Pairs)
	resp := fiber.Map{
		"result": math.Round(result*100) / 100,
	}
	if warning {
		resp["warning"] = "weights do not sum to 100%"
	}
	return c.JSON(resp)
}

func (s *GradeService) ownerGrades(accountID string) ([]models.Grade, error) {
	entries := []models.Grade{}
	err := s.DB.Where("owner_id = ?", accountID).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}
