package services

import (
	"fmt"
	"time"

	"study-dashboard-system/models"
	"study-dashboard-system/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// chatWindow is how many trailing messages a client ever sees.
const chatWindow = 30

// ChatService is the single global chat room. Messages are append-only and
// only the most recent window is materialized for clients.
type ChatService struct {
	DB       *gorm.DB
	Registry *StreamRegistry
}

func NewChatService(db *gorm.DB, registry *StreamRegistry) *ChatService {
	return &ChatService{DB: db, Registry: registry}
}

type sendMessageRequest struct {
	Body string `json:"body" validate:"required"`
}

// SendMessage appends to the global feed. The author name is denormalized
// onto the message so the feed renders without joins.
func (s *ChatService) SendMessage(c *fiber.Ctx) error {
	accountID := c.Locals("user_id").(string)

	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON",
			"cause": err.Error(),
		})
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return c.Status(utils.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	var profile models.Profile
	if err := s.DB.Where("id = ?", accountID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load profile",
			"cause": err.Error(),
		})
	}

	msg := models.ChatMessage{
		AuthorID:   accountID,
		AuthorName: profile.FirstName,
		Body:       req.Body,
	}
	if err := s.DB.Create(&msg).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to send message",
			"cause": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(msg)
}

// chatBubble is one rendered message, annotated relative to the viewer so
// clients can style their own bubbles differently.
type chatBubble struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	Mine       bool      `json:"mine"`
	SentAt     time.Time `json:"sent_at"`
}

// buildChatView annotates the window for one viewer, oldest first so the
// client can scroll straight to the tail.
func buildChatView(msgs []models.ChatMessage, viewerID string) []chatBubble {
	view := make([]chatBubble, len(msgs))
	for i, m := range msgs {
		view[i] = chatBubble{
			ID:         m.ID,
			AuthorName: m.AuthorName,
			Body:       m.Body,
			Mine:       m.AuthorID == viewerID,
			SentAt:     m.CreatedAt,
		}
	}
	return view
}

// ListMessages is the point-read counterpart of the live stream.
func (s *ChatService) ListMessages(c *fiber.Ctx) error {
	accountID := c.Locals("user_id").(string)

	msgs, err := s.recentMessages()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load chat",
			"cause": err.Error(),
		})
	}
	return c.JSON(buildChatView(msgs, accountID))
}

// StreamChat pushes the full trailing window on every change.
func (s *ChatService) StreamChat(c *fiber.Ctx) error {
	return StreamSnapshots(c, s.Registry, FeatureChat, func(accountID string) (interface{}, string, error) {
		msgs, err := s.recentMessages()
		if err != nil {
			return nil, "", err
		}
		version := "0"
		if n := len(msgs); n > 0 {
			version = fmt.Sprintf("%d@%d", n, msgs[n-1].CreatedAt.UnixNano())
		}
		return buildChatView(msgs, accountID), version, nil
	})
}

// recentMessages returns the last chatWindow messages, oldest first.
func (s *ChatService) recentMessages() ([]models.ChatMessage, error) {
	newest := []models.ChatMessage{}
	err := s.DB.Order("created_at DESC").Limit(chatWindow).Find(&newest).Error
	if err != nil {
		return nil, err
	}
	// flip to arrival order
	for i, j := 0, len(newest)-1; i < j; i, j = i+1, j-1 {
		newest[i], newest[j] = newest[j], newest[i]
	}
	return newest, nil
}
