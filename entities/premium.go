package entities

import (
	"github.com/google/uuid"
)

type PremiumTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID     string    `gorm:"uniqueIndex" json:"order_id"`
	UserID      uuid.UUID `json:"user_id"`
	GrossAmount int64     `json:"gross_amount"`
	Status      string    `json:"status"` // Pending, Settled, Failed

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
