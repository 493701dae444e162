package models

import "time"

// Grade is an append-only exam result. No update or delete is exposed.
type Grade struct {
	ID       string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	OwnerID  string  `gorm:"index;not null" json:"owner_id"`
	Subject  string  `json:"subject"`
	ExamName string  `gorm:"not null" json:"exam_name"`
	Value    float64 `gorm:"not null" json:"value"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
