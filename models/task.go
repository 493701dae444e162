package models

import "time"

// Task is a pending to-do. Completion deletes the row and awards XP in the
// same transaction — there is no "done" state to flip.
type Task struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	OwnerID  string `gorm:"index;not null" json:"owner_id"`
	Text     string `gorm:"not null" json:"text"`
	Subject  string `json:"subject"`
	Priority int    `gorm:"default:1" json:"priority"` // 1..3
	Effort   int    `gorm:"default:1" json:"effort"`   // 1..3
	DueDate  string `gorm:"default:Today" json:"due_date"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
