package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSaveWine      = "wine saved to cellar"
	MessageSuccessUnsaveWine    = "wine removed from cellar"
	MessageSuccessGetSavedWines = "saved wines retrieved successfully"

	MessageFailedSaveWine      = "failed to save wine"
	MessageFailedUnsaveWine    = "failed to remove wine"
	MessageFailedGetSavedWines = "failed to retrieve saved wines"

	ErrSavedWineNotFound = errors.New("wine is not in your cellar")
	ErrInvalidDateTried  = errors.New("invalid date tried")
)

type (
	SaveWineRequest struct {
		WineID    string `json:"wine_id" validate:"required,uuid"`
		Rating    *int   `json:"rating" validate:"omitempty,min=1,max=5"`
		DateTried string `json:"date_tried" validate:"omitempty"`
		Location  string `json:"location" validate:"omitempty,max=200"`
		UserNotes string `json:"user_notes" validate:"omitempty,max=500"`
	}

	SavedWineResponse struct {
		ID        string       `json:"id"`
		WineID    string       `json:"wine_id"`
		Rating    *int         `json:"rating,omitempty"`
		DateTried *time.Time   `json:"date_tried,omitempty"`
		Location  *string      `json:"location,omitempty"`
		UserNotes *string      `json:"user_notes,omitempty"`
		Wine      WineResponse `json:"wine"`
		CreatedAt time.Time    `json:"created_at"`
	}
)
