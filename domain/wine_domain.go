package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetWines      = "wines retrieved successfully"
	MessageSuccessGetWineDetail = "wine retrieved successfully"

	MessageFailedGetWines      = "failed to retrieve wines"
	MessageFailedGetWineDetail = "failed to retrieve wine"

	ErrWineNotFound = errors.New("wine not found")
)

type (
	WineResponse struct {
		ID                string   `json:"id"`
		Name              string   `json:"name"`
		Winery            *string  `json:"winery,omitempty"`
		Type              string   `json:"type"`
		Region            *string  `json:"region,omitempty"`
		Year              *int     `json:"year,omitempty"`
		Price             *float64 `json:"price,omitempty"`
		Rating            *float64 `json:"rating,omitempty"`
		FoodPairing       *string  `json:"food_pairing,omitempty"`
		AlcoholPercentage *float64 `json:"alcohol_percentage,omitempty"`
		Description       *string  `json:"description,omitempty"`
		ImageURL          string   `json:"image_url,omitempty"`
		URL               *string  `json:"url,omitempty"`
		IsSaved           bool     `json:"is_saved"`
		CreatedAt         time.Time `json:"created_at"`
	}
)
