package entities

import (
	"time"

	"github.com/google/uuid"
)

// SavedWine is a per-user tasting annotation. At most one row exists per
// (user, wine) pair; saving again updates the existing row.
type SavedWine struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID  `gorm:"uniqueIndex:idx_saved_wines_user_wine" json:"user_id"`
	WineID    uuid.UUID  `gorm:"uniqueIndex:idx_saved_wines_user_wine" json:"wine_id"`
	Rating    *int       `json:"rating,omitempty"` // user rating, 1-5
	DateTried *time.Time `json:"date_tried,omitempty"`
	Location  *string    `json:"location,omitempty"`
	UserNotes *string    `gorm:"type:varchar(500)" json:"user_notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Wine *Wine `gorm:"foreignKey:WineID"`
	Timestamp
}
