package entities

import (
	"time"

	"github.com/google/uuid"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username     string    `gorm:"uniqueIndex" json:"username"`
	Email        string    `json:"email,omitempty"`
	Password     string    `json:"-"`
	Role         string    `json:"role"`
	Achievements string    `gorm:"type:jsonb;default:'{}'" json:"achievements"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	IsPremium    bool      `json:"is_premium"`

	Timestamp
}
