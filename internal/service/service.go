package service

import (
	"trading-signal-bot/config"
	"trading-signal-bot/internal/repository"
	"trading-signal-bot/internal/session"
	"trading-signal-bot/pkg/logger"
	"trading-signal-bot/pkg/telegram"
)

type Service struct {
	VerificationService VerificationService
	BroadcastService    BroadcastService
	ExportService       ExportService
	KeepAliveService    *KeepAliveService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	sessions *session.Store,
	telegram *telegram.TelegramRateLimiter,
) *Service {
	return &Service{
		VerificationService: NewVerificationService(cfg, log, repo.VerifiedUserRepo, repo.PendingVerificationRepo, telegram),
		BroadcastService:    NewBroadcastService(cfg, log, repo.VerifiedUserRepo, sessions, telegram),
		ExportService:       NewExportService(cfg, log, repo.VerifiedUserRepo),
		KeepAliveService:    NewKeepAliveService(cfg, log),
	}
}
