package models

import "time"

// Note is an append-only study note. Slug is derived from the title at
// creation time and used by clients as a stable anchor.
type Note struct {
	ID      string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	OwnerID string `gorm:"index;not null" json:"owner_id"`
	Title   string `gorm:"not null" json:"title"`
	Body    string `gorm:"not null" json:"body"`
	Slug    string `gorm:"index" json:"slug"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
