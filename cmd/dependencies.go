package cmd

import (
	"context"
	"trading-signal-bot/config"
	"trading-signal-bot/internal/session"
	"trading-signal-bot/pkg/cache"
	"trading-signal-bot/pkg/logger"
	"trading-signal-bot/pkg/postgres"
	"trading-signal-bot/pkg/telegram"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

type AppDependency struct {
	db          *postgres.DB
	cfg         *config.Config
	log         *logger.Logger
	validator   *goValidator.Validate
	echo        *echo.Echo
	cache       cache.Cache
	sessions    *session.Store
	telegram    *telegram.TelegramRateLimiter
	telegramBot *telebot.Bot
}

func NewAppDependency(ctx context.Context) (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	validator := goValidator.New()
	if err := validator.Struct(&cfg.Telegram); err != nil {
		log.Error("Invalid telegram configuration", zap.Error(err))
		return nil, err
	}

	db, err := postgres.NewDB(cfg.DB, log)
	if err != nil {
		log.Error("Failed to connect to database", zap.Error(err))
		return nil, err
	}

	pref := telebot.Settings{
		Token:  cfg.Telegram.BotToken,
		Poller: &telebot.LongPoller{Timeout: cfg.Telegram.PollTimeout},
		OnError: func(err error, c telebot.Context) {
			log.Error("Telegram bot error", zap.Error(err))
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		log.Error("Failed to create telegram bot", zap.Error(err))
		return nil, err
	}

	inmemoryCache := cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval)

	return &AppDependency{
		cfg:         cfg,
		log:         log,
		validator:   validator,
		db:          db,
		echo:        echo.New(),
		cache:       inmemoryCache,
		sessions:    session.NewStore(inmemoryCache, cfg.Cache.SessionExpiration),
		telegram:    telegram.NewTelegramRateLimiter(&cfg.Telegram, log, bot),
		telegramBot: bot,
	}, nil
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
