package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecommendations = "recommendations retrieved successfully"
	MessageSuccessToggleMood         = "mood selection updated"
	MessageSuccessTogglePriceBand    = "price band selection updated"
	MessageSuccessGetTaxonomy        = "taxonomy retrieved successfully"
	MessageSuccessChat               = "message sent"
	MessageSuccessGetTranscript      = "transcript retrieved successfully"

	MessageFailedGetRecommendations = "failed to retrieve recommendations"
	MessageFailedToggleMood         = "failed to update mood selection"
	MessageFailedTogglePriceBand    = "failed to update price band selection"
	MessageFailedChat               = "failed to send message"
	MessageFailedGetTranscript      = "failed to retrieve transcript"

	ErrUnknownMood      = errors.New("unknown mood")
	ErrUnknownPriceBand = errors.New("unknown price band")
	ErrEmptyChatMessage = errors.New("message must not be empty")
)

type (
	MoodResponse struct {
		Label    string   `json:"label"`
		Keywords []string `json:"keywords"`
	}

	PriceBandResponse struct {
		Label string  `json:"label"`
		Min   float64 `json:"min"`
		Max   float64 `json:"max"`
	}

	RecommendationsResponse struct {
		Mood      string         `json:"mood,omitempty"`
		PriceBand string         `json:"price_band,omitempty"`
		Wines     []WineResponse `json:"wines"`
	}

	ChatRequest struct {
		Message string `json:"message" validate:"required,max=200"`
	}

	ChatMessageResponse struct {
		ID        string    `json:"id"`
		Text      string    `json:"text"`
		IsUser    bool      `json:"is_user"`
		CreatedAt time.Time `json:"created_at"`
	}

	ChatResponse struct {
		Reply           ChatMessageResponse     `json:"reply"`
		Recommendations RecommendationsResponse `json:"recommendations"`
	}
)
