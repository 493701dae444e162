package services

import (
	"fmt"
	"log"

	"study-dashboard-system/models"
	"study-dashboard-system/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TaskService owns the task lifecycle: add, live list, live counter, and
// completion (the only XP source in the system).
type TaskService struct {
	DB       *gorm.DB
	Registry *StreamRegistry
}

func NewTaskService(db *gorm.DB, registry *StreamRegistry) *TaskService {
	return &TaskService{DB: db, Registry: registry}
}

type addTaskRequest struct {
	Text     string `json:"text" validate:"required"`
	Subject  string `json:"subject"`
	Priority int    `json:"priority" validate:"min=1,max=3"`
	Effort   int    `json:"effort" validate:"min=1,max=3"`
	DueDate  string `json:"due_date"`
}

// AddTask appends a task for the signed-in user. Fire-and-forget from the
// dashboard's point of view: the live list stream delivers the new row.
func (s *TaskService) AddTask(c *fiber.Ctx) error {
	accountID := c.Locals("user_id").(string)

	var req addTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON",
			"cause": err.Error(),
		})
	}
	if req.Priority == 0 {
		req.Priority = 1
	}
	if req.Effort == 0 {
		req.Effort = 1
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return c.Status(utils.StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if req.DueDate == "" {
		req.DueDate = "Today"
	}

	task := models.Task{
		OwnerID:  accountID,
		Text:     req.Text,
		Subject:  req.Subject,
		Priority: req.Priority,
		Effort:   req.Effort,
		DueDate:  req.DueDate,
	}
	if err := s.DB.Create(&task).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create task",
			"cause": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

// ListTasks is the point-read counterpart of the live stream.
func (s *TaskService) ListTasks(c *fiber.Ctx) error {
	accountID := c.Locals("user_id").(string)

	tasks, err := s.ownerTasks(accountID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list tasks",
			"cause": err.Error(),
		})
	}
	return c.JSON(tasks)
}

// completionStore is the pair of store operations a completion performs.
// Split out so the delete-before-increment sequencing is testable without a
// database.
type completionStore interface {
	DeleteTask(taskID, ownerID string) error
	IncrementXP(ownerID string, delta int64) error
}

type gormCompletionStore struct {
	tx *gorm.DB
}

func (s gormCompletionStore) DeleteTask(taskID, ownerID string) error {
	res := s.tx.Where("id = ? AND owner_id = ?", taskID, ownerID).Delete(&models.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s gormCompletionStore) IncrementXP(ownerID string, delta int64) error {
	return s.tx.Model(&models.Profile{}).
		Where("id = ?", ownerID).
		UpdateColumn("xp", gorm.Expr("xp + ?", delta)).Error
}

// completeTask sequences the coupled pair {delete task, increment XP}: the
// increment is only issued once the delete succeeded. Never run in parallel.
func completeTask(store completionStore, taskID, ownerID string, award int64) error {
	if err := store.DeleteTask(taskID, ownerID); err != nil {
		return err
	}
	return store.IncrementXP(ownerID, award)
}

// CompleteTask removes the task and awards 30 + priority×20 + effort×10 XP
// inside one transaction, so a failed delete never grants XP.
func (s *TaskService) CompleteTask(c *fiber.Ctx) error {
	accountID := c.Locals("user_id").(string)
	taskID := c.Params("id")

	var task models.Task
	if err := s.DB.Where("id = ? AND owner_id = ?", taskID, accountID).First(&task).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "task not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load task",
			"cause": err.Error(),
		})
	}

	award := CompletionAward(task.Priority, task.Effort)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return completeTask(gormCompletionStore{tx: tx}, taskID, accountID, award)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "task completion failed",
			"cause": err.Error(),
		})
	}

	log.Printf("[TASKS] completed %s for %s, awarded %d XP", taskID, accountID, award)

	return c.JSON(fiber.Map{
		"message":    "task completed",
		"xp_awarded": award,
	})
}

// StreamTasks is the live list subscription: full snapshot per change, in
// insertion order.
func (s *TaskService) StreamTasks(c *fiber.Ctx) error {
	return StreamSnapshots(c, s.Registry, FeatureTasks, func(accountID string) (interface{}, string, error) {
		tasks, err := s.ownerTasks(accountID)
		if err != nil {
			return nil, "", err
		}
		return tasks, taskVersion(tasks), nil
	})
}

// StreamTaskCounter is an independent subscription to the same path that only
// carries the count. Clients hide the badge when it reaches zero.
func (s *TaskService) StreamTaskCounter(c *fiber.Ctx) error {
	return StreamSnapshots(c, s.Registry, FeatureTaskCounter, func(accountID string) (interface{}, string, error) {
		var count int64
		if err := s.DB.Model(&models.Task{}).Where("owner_id = ?", accountID).Count(&count).Error; err != nil {
			return nil, "", err
		}
		return fiber.Map{"count": count}, fmt.Sprintf("%d", count), nil
	})
}

func (s *TaskService) ownerTasks(accountID string) ([]models.Task, error) {
	tasks := []models.Task{}
	err := s.DB.Where("owner_id = ?", accountID).
		Order("created_at ASC").
		Find(&tasks).Error
	return tasks, err
}

func taskVersion(tasks []models.Task) string {
	if len(tasks) == 0 {
		return "0"
	}
	last := tasks[len(tasks)-1]
	return fmt.Sprintf("%d@%d", len(tasks), last.CreatedAt.UnixNano())
}
