package recommend

import (
	"SipMate-Backend/domain"
	"SipMate-Backend/entities"
	"SipMate-Backend/internal/utils/storage"
	"SipMate-Backend/pkg/wine"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecommendService interface {
		GetRecommendations(ctx context.Context, userID string) (domain.RecommendationsResponse, error)
		ToggleMood(ctx context.Context, userID string, label string) (domain.RecommendationsResponse, error)
		TogglePriceBand(ctx context.Context, userID string, label string) (domain.RecommendationsResponse, error)
		Chat(ctx context.Context, userID string, message string) (domain.ChatResponse, error)
		GetTranscript(ctx context.Context, userID string) ([]domain.ChatMessageResponse, error)
		Moods() []domain.MoodResponse
		PriceBands() []domain.PriceBandResponse
	}

	recommendService struct {
		recommendRepository RecommendRepository
		wineRepository      wine.WineRepository
		s3                  storage.AwsS3
	}
)

func NewRecommendService(recommendRepository RecommendRepository, wineRepository wine.WineRepository, s3 storage.AwsS3) RecommendService {
	return &recommendService{
		recommendRepository: recommendRepository,
		wineRepository:      wineRepository,
		s3:                  s3,
	}
}

func (s *recommendService) GetRecommendations(ctx context.Context, userID string) (domain.RecommendationsResponse, error) {
	pref, err := s.loadPreference(ctx, userID)
	if err != nil {
		return domain.RecommendationsResponse{}, err
	}
	return s.recompute(ctx, userID, pref)
}

// ToggleMood selects the mood, or clears it when it is already the active
// selection. At most one mood is active at a time. Every change reruns the
// full recommendation pipeline.
func (s *recommendService) ToggleMood(ctx context.Context, userID string, label string) (domain.RecommendationsResponse, error) {
	if _, ok := MoodByLabel(label); !ok {
		return domain.RecommendationsResponse{}, domain.ErrUnknownMood
	}

	pref, err := s.loadPreference(ctx, userID)
	if err != nil {
		return domain.RecommendationsResponse{}, err
	}

	if pref.Mood == label {
		pref.Mood = ""
	} else {
		pref.Mood = label
	}

	if err := s.recommendRepository.UpsertPreference(ctx, pref); err != nil {
		return domain.RecommendationsResponse{}, err
	}
	return s.recompute(ctx, userID, pref)
}

func (s *recommendService) TogglePriceBand(ctx context.Context, userID string, label string) (domain.RecommendationsResponse, error) {
	if _, ok := PriceBandByLabel(label); !ok {
		return domain.RecommendationsResponse{}, domain.ErrUnknownPriceBand
	}

	pref, err := s.loadPreference(ctx, userID)
	if err != nil {
		return domain.RecommendationsResponse{}, err
	}

	if pref.PriceBand == label {
		pref.PriceBand = ""
	} else {
		pref.PriceBand = label
	}

	if err := s.recommendRepository.UpsertPreference(ctx, pref); err != nil {
		return domain.RecommendationsResponse{}, err
	}
	return s.recompute(ctx, userID, pref)
}

// Chat appends exactly one user entry and one assistant entry to the
// transcript, applies any filter selections the message implies and returns
// the recomputed recommendation list. Empty input is rejected before the
// transcript is touched.
func (s *recommendService) Chat(ctx context.Context, userID string, message string) (domain.ChatResponse, error) {
	result, ok := Respond(message)
	if !ok {
		return domain.ChatResponse{}, domain.ErrEmptyChatMessage
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ChatResponse{}, domain.ErrParseUUID
	}

	if err := s.ensureGreeting(ctx, userUUID); err != nil {
		return domain.ChatResponse{}, err
	}

	userMsg := &entities.ChatMessage{
		ID:     uuid.New(),
		UserID: userUUID,
		Text:   strings.TrimSpace(message),
		IsUser: true,
	}
	if err := s.recommendRepository.AppendChatMessage(ctx, userMsg); err != nil {
		return domain.ChatResponse{}, err
	}

	reply := &entities.ChatMessage{
		ID:     uuid.New(),
		UserID: userUUID,
		Text:   result.Reply,
		IsUser: false,
	}
	if err := s.recommendRepository.AppendChatMessage(ctx, reply); err != nil {
		return domain.ChatResponse{}, err
	}

	pref, err := s.loadPreference(ctx, userID)
	if err != nil {
		return domain.ChatResponse{}, err
	}

	if result.Mood != "" || result.PriceBand != "" {
		if result.Mood != "" {
			pref.Mood = result.Mood
		}
		if result.PriceBand != "" {
			pref.PriceBand = result.PriceBand
		}
		if err := s.recommendRepository.UpsertPreference(ctx, pref); err != nil {
			return domain.ChatResponse{}, err
		}
	}

	recommendations, err := s.recompute(ctx, userID, pref)
	if err != nil {
		return domain.ChatResponse{}, err
	}

	return domain.ChatResponse{
		Reply: domain.ChatMessageResponse{
			ID:        reply.ID.String(),
			Text:      reply.Text,
			IsUser:    false,
			CreatedAt: reply.CreatedAt,
		},
		Recommendations: recommendations,
	}, nil
}

func (s *recommendService) GetTranscript(ctx context.Context, userID string) ([]domain.ChatMessageResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if err := s.ensureGreeting(ctx, userUUID); err != nil {
		return nil, err
	}

	messages, err := s.recommendRepository.GetChatMessages(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		response = append(response, domain.ChatMessageResponse{
			ID:        m.ID.String(),
			Text:      m.Text,
			IsUser:    m.IsUser,
			CreatedAt: m.CreatedAt,
		})
	}
	return response, nil
}

func (s *recommendService) Moods() []domain.MoodResponse {
	response := make([]domain.MoodResponse, 0, len(Moods))
	for _, m := range Moods {
		response = append(response, domain.MoodResponse{Label: m.Label, Keywords: m.Keywords})
	}
	return response
}

func (s *recommendService) PriceBands() []domain.PriceBandResponse {
	response := make([]domain.PriceBandResponse, 0, len(PriceBands))
	for _, b := range PriceBands {
		response = append(response, domain.PriceBandResponse{Label: b.Label, Min: b.Min, Max: b.Max})
	}
	return response
}

func (s *recommendService) loadPreference(ctx context.Context, userID string) (*entities.TastePreference, error) {
	pref, err := s.recommendRepository.GetPreference(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			userUUID, err := uuid.Parse(userID)
			if err != nil {
				return nil, domain.ErrParseUUID
			}
			return &entities.TastePreference{ID: uuid.New(), UserID: userUUID}, nil
		}
		return nil, err
	}
	return pref, nil
}

// ensureGreeting seeds a new transcript with the assistant's opening
// message so the first reply the client renders is always the greeting.
func (s *recommendService) ensureGreeting(ctx context.Context, userUUID uuid.UUID) error {
	messages, err := s.recommendRepository.GetChatMessages(ctx, userUUID.String())
	if err != nil {
		return err
	}
	if len(messages) > 0 {
		return nil
	}
	return s.recommendRepository.AppendChatMessage(ctx, &entities.ChatMessage{
		ID:     uuid.New(),
		UserID: userUUID,
		Text:   Greeting,
		IsUser: false,
	})
}

func (s *recommendService) recompute(ctx context.Context, userID string, pref *entities.TastePreference) (domain.RecommendationsResponse, error) {
	snapshot, err := s.wineRepository.GetWines(ctx)
	if err != nil {
		return domain.RecommendationsResponse{}, err
	}

	saved, err := s.wineRepository.GetSavedWineIDs(ctx, userID)
	if err != nil {
		return domain.RecommendationsResponse{}, err
	}

	recommended := Recommend(snapshot, pref.Mood, pref.PriceBand)

	wines := make([]domain.WineResponse, 0, len(recommended))
	for _, w := range recommended {
		wines = append(wines, wine.ResponseFromEntity(w, s.s3, saved[w.ID.String()]))
	}

	return domain.RecommendationsResponse{
		Mood:      pref.Mood,
		PriceBand: pref.PriceBand,
		Wines:     wines,
	}, nil
}
