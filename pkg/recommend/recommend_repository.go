package recommend

import (
	"SipMate-Backend/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecommendRepository interface {
		GetPreference(ctx context.Context, userID string) (*entities.TastePreference, error)
		UpsertPreference(ctx context.Context, pref *entities.TastePreference) error
		AppendChatMessage(ctx context.Context, msg *entities.ChatMessage) error
		GetChatMessages(ctx context.Context, userID string) ([]entities.ChatMessage, error)
	}

	recommendRepository struct {
		db *gorm.DB
	}
)

func NewRecommendRepository(db *gorm.DB) RecommendRepository {
	return &recommendRepository{db: db}
}

func (r *recommendRepository) GetPreference(ctx context.Context, userID string) (*entities.TastePreference, error) {
	var pref entities.TastePreference
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *recommendRepository) UpsertPreference(ctx context.Context, pref *entities.TastePreference) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"mood", "price_band", "updated_at"}),
	}).Create(pref).Error
}

func (r *recommendRepository) AppendChatMessage(ctx context.Context, msg *entities.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *recommendRepository) GetChatMessages(ctx context.Context, userID string) ([]entities.ChatMessage, error) {
	var messages []entities.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
