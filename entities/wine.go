package entities

import (
	"github.com/google/uuid"
)

// Wine is a read-mostly catalog record. Every field except ID, Name and Type
// is nullable; consumers treat a missing value as "exclude from this
// criterion", never as an error.
type Wine struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name              string    `json:"name"`
	Winery            *string   `json:"winery,omitempty"`
	Type              string    `json:"type"` // "red", "white", "rosé", "sparkling", "dessert"
	Region            *string   `json:"region,omitempty"`
	Year              *int      `json:"year,omitempty"`
	Price             *float64  `json:"price,omitempty"`
	Rating            *float64  `json:"rating,omitempty"` // editorial average, 0-5
	FoodPairing       *string   `gorm:"column:food_pairing" json:"food_pairing,omitempty"`
	AlcoholPercentage *float64  `json:"alcohol_percentage,omitempty"`
	Description       *string   `gorm:"type:text" json:"description,omitempty"`
	WineImageName     *string   `json:"wine_image_name,omitempty"`
	URL               *string   `json:"url,omitempty"`

	Timestamp
}
