package premium

import (
	"SipMate-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	PremiumRepository interface {
		CreateTransaction(ctx context.Context, tx *entities.PremiumTransaction) error
		GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.PremiumTransaction, error)
		UpdateTransaction(ctx context.Context, tx *entities.PremiumTransaction) error
	}

	premiumRepository struct {
		db *gorm.DB
	}
)

func NewPremiumRepository(db *gorm.DB) PremiumRepository {
	return &premiumRepository{db: db}
}

func (r *premiumRepository) CreateTransaction(ctx context.Context, tx *entities.PremiumTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *premiumRepository) GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.PremiumTransaction, error) {
	var tx entities.PremiumTransaction
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *premiumRepository) UpdateTransaction(ctx context.Context, tx *entities.PremiumTransaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}
