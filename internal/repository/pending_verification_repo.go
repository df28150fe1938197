package repository

import (
	"context"
	"trading-signal-bot/internal/model"
	"trading-signal-bot/pkg/utils"

	"gorm.io/gorm"
)

type PendingVerificationRepository interface {
	Create(ctx context.Context, pending *model.PendingVerification, opts ...utils.DBOption) error
	GetByUserID(ctx context.Context, userID int64, opts ...utils.DBOption) (*model.PendingVerification, error)
	DeleteByUserID(ctx context.Context, userID int64, opts ...utils.DBOption) error
}

type pendingVerificationRepository struct {
	db *gorm.DB
}

func NewPendingVerificationRepository(db *gorm.DB) PendingVerificationRepository {
	return &pendingVerificationRepository{
		db: db,
	}
}

func (r *pendingVerificationRepository) Create(ctx context.Context, pending *model.PendingVerification, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Create(pending).Error
}

// GetByUserID returns the first pending record for the user, or nil when
// nothing is waiting for review.
func (r *pendingVerificationRepository) GetByUserID(ctx context.Context, userID int64, opts ...utils.DBOption) (*model.PendingVerification, error) {
	var pending model.PendingVerification
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.Where("user_id = ?", userID).Order("submitted_at ASC").First(&pending)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, result.Error
	}

	return &pending, nil
}

func (r *pendingVerificationRepository) DeleteByUserID(ctx context.Context, userID int64, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Where("user_id = ?", userID).Delete(&model.PendingVerification{}).Error
}
