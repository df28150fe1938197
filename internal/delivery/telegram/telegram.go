package telegram

import (
	"context"
	"time"
	"trading-signal-bot/config"
	"trading-signal-bot/internal/repository"
	"trading-signal-bot/internal/service"
	"trading-signal-bot/internal/session"
	"trading-signal-bot/pkg/logger"
	"trading-signal-bot/pkg/telegram"

	goValidator "github.com/go-playground/validator/v10"
	"gopkg.in/telebot.v3"
)

type TelegramBotHandler struct {
	ctx       context.Context
	cfg       *config.Config
	bot       *telebot.Bot
	log       *logger.Logger
	telegram  *telegram.TelegramRateLimiter
	validator *goValidator.Validate
	service   *service.Service
	sessions  *session.Store
	repo      *repository.Repository
}

func NewTelegramBotHandler(
	ctx context.Context,
	cfg *config.Config,
	log *logger.Logger,
	bot *telebot.Bot,
	telegram *telegram.TelegramRateLimiter,
	validator *goValidator.Validate,
	service *service.Service,
	sessions *session.Store,
	repo *repository.Repository,
) *TelegramBotHandler {
	return &TelegramBotHandler{
		ctx:       ctx,
		cfg:       cfg,
		log:       log,
		bot:       bot,
		telegram:  telegram,
		validator: validator,
		service:   service,
		sessions:  sessions,
		repo:      repo,
	}
}

func (t *TelegramBotHandler) Start() {
	t.log.Info("Starting Telegram bot...")

	t.RegisterHandlers()
	t.bot.Start()
}

func (t *TelegramBotHandler) Stop() {
	t.log.Info("Stopping Telegram bot...")

	ctx, cancel := context.WithTimeout(t.ctx, 10*time.Second)
	defer cancel()

	stopDone := make(chan error, 1)
	go func() {
		t.bot.Stop()
		stopDone <- nil
	}()

	select {
	case <-stopDone:
		t.log.Info("Telegram bot stopped successfully")
	case <-ctx.Done():
		t.log.Warn("Timeout while stopping bot, forcing shutdown")
	}

	t.log.Info("Telegram bot shutdown completed")
}
