package repository

import (
	"trading-signal-bot/config"
	"trading-signal-bot/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	VerifiedUserRepo        VerifiedUserRepository
	PendingVerificationRepo PendingVerificationRepository
}

func NewRepository(cfg *config.Config, db *gorm.DB, log *logger.Logger) (*Repository, error) {
	return &Repository{
		VerifiedUserRepo:        NewVerifiedUserRepository(db),
		PendingVerificationRepo: NewPendingVerificationRepository(db),
	}, nil
}
