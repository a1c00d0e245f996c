package wine

import (
	"SipMate-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	WineRepository interface {
		GetWines(ctx context.Context) ([]entities.Wine, error)
		GetWineByID(ctx context.Context, id string) (*entities.Wine, error)
		GetSavedWineIDs(ctx context.Context, userID string) (map[string]bool, error)
	}

	wineRepository struct {
		db *gorm.DB
	}
)

func NewWineRepository(db *gorm.DB) WineRepository {
	return &wineRepository{db: db}
}

// GetWines returns the full catalog snapshot. Callers re-filter and re-sort
// in memory, so the database order only serves as the stable tie-break.
func (r *wineRepository) GetWines(ctx context.Context) ([]entities.Wine, error) {
	var wines []entities.Wine
	if err := r.db.WithContext(ctx).Order("name asc").Find(&wines).Error; err != nil {
		return nil, err
	}
	return wines, nil
}

func (r *wineRepository) GetWineByID(ctx context.Context, id string) (*entities.Wine, error) {
	var wine entities.Wine
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&wine).Error; err != nil {
		return nil, err
	}
	return &wine, nil
}

func (r *wineRepository) GetSavedWineIDs(ctx context.Context, userID string) (map[string]bool, error) {
	saved := make(map[string]bool)
	if userID == "" {
		return saved, nil
	}

	var wineIDs []string
	if err := r.db.WithContext(ctx).Model(&entities.SavedWine{}).
		Where("user_id = ?", userID).
		Pluck("wine_id", &wineIDs).Error; err != nil {
		return nil, err
	}

	for _, id := range wineIDs {
		saved[id] = true
	}
	return saved, nil
}
