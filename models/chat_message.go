package models

import "time"

// ChatMessage lives in a single global collection — it is not owner-scoped.
// AuthorName is denormalized so the feed renders without a profile join.
type ChatMessage struct {
	ID         string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	AuthorID   string `gorm:"index;not null" json:"author_id"`
	AuthorName string `gorm:"not null" json:"author_name"`
	Body       string `gorm:"not null" json:"body"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
