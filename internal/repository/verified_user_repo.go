package repository

import (
	"context"
	"trading-signal-bot/internal/model"
	"trading-signal-bot/pkg/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VerifiedUserRepository interface {
	Upsert(ctx context.Context, user *model.VerifiedUser, opts ...utils.DBOption) error
	GetByUserID(ctx context.Context, userID int64, opts ...utils.DBOption) (*model.VerifiedUser, error)
	GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.VerifiedUser, error)
	GetAllIDs(ctx context.Context, opts ...utils.DBOption) ([]int64, error)
	Delete(ctx context.Context, userID int64, opts ...utils.DBOption) error
}

type verifiedUserRepository struct {
	db *gorm.DB
}

func NewVerifiedUserRepository(db *gorm.DB) VerifiedUserRepository {
	return &verifiedUserRepository{
		db: db,
	}
}

// Upsert inserts the user or, when the user id already exists, overwrites
// every field. Re-registration must not duplicate rows.
func (r *verifiedUserRepository) Upsert(ctx context.Context, user *model.VerifiedUser, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"phone", "full_name", "national_id", "registered_at"}),
	}).Create(user).Error
}

func (r *verifiedUserRepository) GetByUserID(ctx context.Context, userID int64, opts ...utils.DBOption) (*model.VerifiedUser, error) {
	var user model.VerifiedUser
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.Where("user_id = ?", userID).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, result.Error
	}

	return &user, nil
}

func (r *verifiedUserRepository) GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.VerifiedUser, error) {
	var users []model.VerifiedUser
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	if err := tx.Order("registered_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *verifiedUserRepository) GetAllIDs(ctx context.Context, opts ...utils.DBOption) ([]int64, error) {
	var ids []int64
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	if err := tx.Model(&model.VerifiedUser{}).Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *verifiedUserRepository) Delete(ctx context.Context, userID int64, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Where("user_id = ?", userID).Delete(&model.VerifiedUser{}).Error
}
