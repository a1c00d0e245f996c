package cellar

import (
	"SipMate-Backend/domain"
	"SipMate-Backend/entities"
	"SipMate-Backend/internal/utils/storage"
	"SipMate-Backend/pkg/wine"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CellarService interface {
		SaveWine(ctx context.Context, req domain.SaveWineRequest, userID string) (domain.SavedWineResponse, error)
		UnsaveWine(ctx context.Context, wineID string, userID string) error
		GetSavedWines(ctx context.Context, userID string) ([]domain.SavedWineResponse, error)
	}

	cellarService struct {
		cellarRepository CellarRepository
		wineRepository   wine.WineRepository
		s3               storage.AwsS3
	}
)

func NewCellarService(cellarRepository CellarRepository, wineRepository wine.WineRepository, s3 storage.AwsS3) CellarService {
	return &cellarService{
		cellarRepository: cellarRepository,
		wineRepository:   wineRepository,
		s3:               s3,
	}
}

func (s *cellarService) SaveWine(ctx context.Context, req domain.SaveWineRequest, userID string) (domain.SavedWineResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SavedWineResponse{}, domain.ErrParseUUID
	}

	w, err := s.wineRepository.GetWineByID(ctx, req.WineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SavedWineResponse{}, domain.ErrWineNotFound
		}
		return domain.SavedWineResponse{}, err
	}

	savedWine := &entities.SavedWine{
		ID:     uuid.New(),
		UserID: userUUID,
		WineID: w.ID,
		Rating: req.Rating,
	}

	if req.DateTried != "" {
		dateTried, err := time.Parse("2006-01-02", req.DateTried)
		if err != nil {
			return domain.SavedWineResponse{}, domain.ErrInvalidDateTried
		}
		savedWine.DateTried = &dateTried
	}
	if req.Location != "" {
		savedWine.Location = &req.Location
	}
	if req.UserNotes != "" {
		savedWine.UserNotes = &req.UserNotes
	}

	if err := s.cellarRepository.UpsertSavedWine(ctx, savedWine); err != nil {
		return domain.SavedWineResponse{}, err
	}

	return domain.SavedWineResponse{
		ID:        savedWine.ID.String(),
		WineID:    w.ID.String(),
		Rating:    savedWine.Rating,
		DateTried: savedWine.DateTried,
		Location:  savedWine.Location,
		UserNotes: savedWine.UserNotes,
		Wine:      wine.ResponseFromEntity(*w, s.s3, true),
		CreatedAt: savedWine.CreatedAt,
	}, nil
}

func (s *cellarService) UnsaveWine(ctx context.Context, wineID string, userID string) error {
	affected, err := s.cellarRepository.DeleteSavedWine(ctx, userID, wineID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSavedWineNotFound
	}
	return nil
}

func (s *cellarService) GetSavedWines(ctx context.Context, userID string) ([]domain.SavedWineResponse, error) {
	savedWines, err := s.cellarRepository.GetSavedWines(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.SavedWineResponse, 0, len(savedWines))
	for _, sw := range savedWines {
		res := domain.SavedWineResponse{
			ID:        sw.ID.String(),
			WineID:    sw.WineID.String(),
			Rating:    sw.Rating,
			DateTried: sw.DateTried,
			Location:  sw.Location,
			UserNotes: sw.UserNotes,
			CreatedAt: sw.CreatedAt,
		}
		if sw.Wine != nil {
			res.Wine = wine.ResponseFromEntity(*sw.Wine, s.s3, true)
		}
		response = append(response, res)
	}
	return response, nil
}
