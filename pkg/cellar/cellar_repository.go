package cellar

import (
	"SipMate-Backend/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CellarRepository interface {
		UpsertSavedWine(ctx context.Context, savedWine *entities.SavedWine) error
		DeleteSavedWine(ctx context.Context, userID string, wineID string) (int64, error)
		GetSavedWines(ctx context.Context, userID string) ([]entities.SavedWine, error)
	}

	cellarRepository struct {
		db *gorm.DB
	}
)

func NewCellarRepository(db *gorm.DB) CellarRepository {
	return &cellarRepository{db: db}
}

// UpsertSavedWine creates or updates the annotation keyed by
// (user_id, wine_id). Saving twice never duplicates.
func (r *cellarRepository) UpsertSavedWine(ctx context.Context, savedWine *entities.SavedWine) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "wine_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"rating", "date_tried", "location", "user_notes", "updated_at",
		}),
	}).Create(savedWine).Error
}

func (r *cellarRepository) DeleteSavedWine(ctx context.Context, userID string, wineID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND wine_id = ?", userID, wineID).
		Delete(&entities.SavedWine{})
	return result.RowsAffected, result.Error
}

func (r *cellarRepository) GetSavedWines(ctx context.Context, userID string) ([]entities.SavedWine, error) {
	var savedWines []entities.SavedWine
	if err := r.db.WithContext(ctx).
		Preload("Wine").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&savedWines).Error; err != nil {
		return nil, err
	}
	return savedWines, nil
}
