package models

import (
	"time"

	"gorm.io/gorm"
)

// Account is the identity record: credentials only, nothing dashboard-facing.
// Profile data lives in Profile so registration can perform the two writes as
// separate steps (identity first, profile second).
type Account struct {
	ID           string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	Timestamps
}

// Profile is the dashboard-facing user record. Level is never stored — it is
// derived from XP on every read (see services.LevelFor).
type Profile struct {
	ID        string `gorm:"primaryKey;type:uuid" json:"id"` // same value as Account.ID
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `json:"last_name"`
	XP        int64  `gorm:"default:0" json:"xp"`
	RankLabel string `gorm:"default:Novice" json:"rank_label"`

	Timestamps
}

// RefreshToken stores the HMAC of an issued refresh token so logout and
// rotation can revoke it server-side.
type RefreshToken struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	AccountID string    `gorm:"index;not null" json:"account_id"`
	TokenHash []byte    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
