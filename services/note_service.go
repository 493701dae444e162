package services

import (
	"fmt"

	"study-dashboard-system/models"
	"study-dashboard-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// NoteService records study notes. Append-only, owner-scoped.
type NoteService struct {
	DB       *gorm.DB
	Registry *StreamRegistry
}

func NewNoteService(db *gorm.DB, registry *StreamRegistry) *NoteService {
	return &NoteService{DB: db, Registry: registry}
}

type addNoteRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// AddNote appends a note. The slug is derived from the title with a short
// uuid suffix so repeated titles stay unique.
func (s *NoteService) AddNote(c *fiber.Ctx) error {
	accountID := c.Locals("user_id").(string)

	var req addNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON",
			"cause": err.Error(),
		})
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return c.Status(utils.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	note := models.Note{
		OwnerID: accountID,
		Title:   req.Title,
		Body:    req.Body,
		Slug:    fmt.Sprintf("%s-%s", slug.Make(req.Title), uuid.NewString()[:8]),
	}
	if err := s.DB.Create(&note).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save note",
			"cause": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(note)
}

// ListNotes is the point-read counterpart of the live stream.
func (s *NoteService) ListNotes(c *fiber.Ctx) error {
	accountID := c.Locals("user_id").(string)

	notes, err := s.ownerNotes(accountID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list notes",
			"cause": err.Error(),
		})
	}
	return c.JSON(notes)
}

// StreamNotes pushes the owner's full note list on every change.
func (s *NoteService) StreamNotes(c *fiber.Ctx) error {
	return StreamSnapshots(c, s.Registry, FeatureNotes, func(accountID string) (interface{}, string, error) {
		notes, err := s.ownerNotes(accountID)
		if err != nil {
			return nil, "", err
		}
		version := "0"
		if n := len(notes); n > 0 {
			version = fmt.Sprintf("%d@%d", n, notes[n-1].CreatedAt.UnixNano())
		}
		return notes, version, nil
	})
}

func (s *NoteService) ownerNotes(accountID string) ([]models.Note, error) {
	notes := []models.Note{}
	err := s.DB.Where("owner_id = ?", accountID).
		Order("created_at ASC").
		Find(&notes).Error
	return notes, err
}
