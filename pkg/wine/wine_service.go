package wine

import (
	"SipMate-Backend/domain"
	"SipMate-Backend/entities"
	"SipMate-Backend/internal/utils/storage"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	WineService interface {
		BrowseWines(ctx context.Context, userID string, query string, wineType string, sortKey string, page, limit int) ([]domain.WineResponse, int64, error)
		GetWineByID(ctx context.Context, id string, userID string) (domain.WineResponse, error)
	}

	wineService struct {
		wineRepository WineRepository
		s3             storage.AwsS3
	}
)

func NewWineService(wineRepository WineRepository, s3 storage.AwsS3) WineService {
	return &wineService{
		wineRepository: wineRepository,
		s3:             s3,
	}
}

// BrowseWines loads the catalog snapshot, runs the filter/sort pipeline over
// it in memory and pages the derived list. The snapshot itself is never
// mutated; every call recomputes the view from scratch.
func (s *wineService) BrowseWines(ctx context.Context, userID string, query string, wineType string, sortKey string, page, limit int) ([]domain.WineResponse, int64, error) {
	snapshot, err := s.wineRepository.GetWines(ctx)
	if err != nil {
		return nil, 0, err
	}

	saved, err := s.wineRepository.GetSavedWineIDs(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	view := BrowseWines(snapshot, query, wineType, sortKey)
	total := int64(len(view))

	offset := (page - 1) * limit
	if offset >= len(view) {
		return []domain.WineResponse{}, total, nil
	}
	end := offset + limit
	if end > len(view) {
		end = len(view)
	}

	response := make([]domain.WineResponse, 0, end-offset)
	for _, w := range view[offset:end] {
		response = append(response, s.toResponse(w, saved[w.ID.String()]))
	}
	return response, total, nil
}

func (s *wineService) GetWineByID(ctx context.Context, id string, userID string) (domain.WineResponse, error) {
	w, err := s.wineRepository.GetWineByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.WineResponse{}, domain.ErrWineNotFound
		}
		return domain.WineResponse{}, err
	}

	saved, err := s.wineRepository.GetSavedWineIDs(ctx, userID)
	if err != nil {
		return domain.WineResponse{}, err
	}

	return s.toResponse(*w, saved[w.ID.String()]), nil
}

func (s *wineService) toResponse(w entities.Wine, isSaved bool) domain.WineResponse {
	return ResponseFromEntity(w, s.s3, isSaved)
}

// ResponseFromEntity maps a catalog record to its API shape, resolving the
// stored image name to a public bucket URL. Shared with the cellar and
// recommendation services.
func ResponseFromEntity(w entities.Wine, s3 storage.AwsS3, isSaved bool) domain.WineResponse {
	var imageURL string
	if w.WineImageName != nil && *w.WineImageName != "" {
		imageURL = s3.GetPublicLinkKey("wine-images/" + *w.WineImageName)
	}

	return domain.WineResponse{
		ID:                w.ID.String(),
		Name:              w.Name,
		Winery:            w.Winery,
		Type:              w.Type,
		Region:            w.Region,
		Year:              w.Year,
		Price:             w.Price,
		Rating:            w.Rating,
		FoodPairing:       w.FoodPairing,
		AlcoholPercentage: w.AlcoholPercentage,
		Description:       w.Description,
		ImageURL:          imageURL,
		URL:               w.URL,
		IsSaved:           isSaved,
		CreatedAt:         w.CreatedAt,
	}
}
