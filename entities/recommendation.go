package entities

import (
	"time"

	"github.com/google/uuid"
)

// TastePreference holds the caller's currently selected mood and price band.
// One row per user, upserted on every toggle; empty string means nothing
// selected for that dimension.
type TastePreference struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	Mood      string    `json:"mood,omitempty"`
	PriceBand string    `json:"price_band,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

// ChatMessage is one entry of a user's assistant transcript. The transcript
// is append-only; rows are never edited or removed.
type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `gorm:"type:text" json:"text"`
	IsUser    bool      `json:"is_user"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}
