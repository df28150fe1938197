package telegram

import (
	"context"
	"sync"
	"time"
	"trading-signal-bot/config"
	"trading-signal-bot/pkg/logger"
	"trading-signal-bot/pkg/utils"

	"golang.org/x/time/rate"
	"gopkg.in/telebot.v3"
)

type userLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// TelegramRateLimiter wraps outbound bot calls behind a global limiter plus a
// per-recipient limiter, so broadcast fan-out stays inside Telegram's limits.
type TelegramRateLimiter struct {
	cfg           *config.TelegramConfig
	log           *logger.Logger
	globalLimiter *rate.Limiter
	userLimiters  map[int64]*userLimiterEntry
	bot           *telebot.Bot
	mu            sync.Mutex
	editMu        sync.Mutex
	wg            sync.WaitGroup
}

func NewTelegramRateLimiter(cfg *config.TelegramConfig, log *logger.Logger, bot *telebot.Bot) *TelegramRateLimiter {
	return &TelegramRateLimiter{
		cfg:           cfg,
		log:           log,
		bot:           bot,
		globalLimiter: rate.NewLimiter(rate.Limit(cfg.MaxGlobalRequestPerSecond), cfg.MaxGlobalRequestPerSecond),
		userLimiters:  make(map[int64]*userLimiterEntry),
	}
}

func (t *TelegramRateLimiter) Send(ctx context.Context, c telebot.Context, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	if err := t.checkRateLimit(ctx, c.Chat().ID); err != nil {
		return nil, err
	}
	return t.bot.Send(c.Chat(), what, opts...)
}

// SendMessageUser delivers a message to a user outside of any update context,
// e.g. broadcast recipients or the admin chat.
func (t *TelegramRateLimiter) SendMessageUser(ctx context.Context, message string, chatID int64, opts ...interface{}) error {
	if err := t.checkRateLimit(ctx, chatID); err != nil {
		return err
	}
	_, err := t.bot.Send(&telebot.User{ID: chatID}, message, opts...)
	return err
}

// SendPhotoUser delivers an already-uploaded photo (by file id) to a chat.
func (t *TelegramRateLimiter) SendPhotoUser(ctx context.Context, photo *telebot.Photo, chatID int64, opts ...interface{}) error {
	if err := t.checkRateLimit(ctx, chatID); err != nil {
		return err
	}
	_, err := t.bot.Send(&telebot.User{ID: chatID}, photo, opts...)
	return err
}

// SendDocumentUser delivers a local file as a document, e.g. the export sheet.
func (t *TelegramRateLimiter) SendDocumentUser(ctx context.Context, doc *telebot.Document, chatID int64, opts ...interface{}) error {
	if err := t.checkRateLimit(ctx, chatID); err != nil {
		return err
	}
	_, err := t.bot.Send(&telebot.User{ID: chatID}, doc, opts...)
	return err
}

func (t *TelegramRateLimiter) Edit(ctx context.Context, c telebot.Context, msg *telebot.Message, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	if err := t.checkRateLimit(ctx, c.Chat().ID); err != nil {
		return nil, err
	}

	t.editMu.Lock()
	defer t.editMu.Unlock()
	return t.bot.Edit(msg, what, opts...)
}

func (t *TelegramRateLimiter) Respond(ctx context.Context, c telebot.Context, resp ...*telebot.CallbackResponse) error {
	if err := t.checkRateLimit(ctx, c.Chat().ID); err != nil {
		return err
	}
	return c.Respond(resp...)
}

func (r *TelegramRateLimiter) getUserLimiter(chatID int64) *userLimiterEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limiter, exists := r.userLimiters[chatID]; exists {
		limiter.lastAccess = time.Now()
		return limiter
	}

	limiter := rate.NewLimiter(rate.Limit(r.cfg.MaxUserRequestPerSecond), r.cfg.MaxUserRequestPerSecond)
	r.userLimiters[chatID] = &userLimiterEntry{
		limiter:    limiter,
		lastAccess: time.Now(),
	}
	return r.userLimiters[chatID]
}

func (r *TelegramRateLimiter) checkRateLimit(ctx context.Context, chatID int64) error {
	userLimiter := r.getUserLimiter(chatID)

	if err := r.globalLimiter.Wait(ctx); err != nil {
		r.log.ErrorContext(ctx, "Failed to wait for global rate limit", logger.ErrorField(err))
		return err
	}
	if err := userLimiter.limiter.Wait(ctx); err != nil {
		r.log.ErrorContext(ctx, "Failed to wait for user rate limit", logger.ErrorField(err))
		return err
	}
	return nil
}

func (r *TelegramRateLimiter) StartCleanupExpired(ctx context.Context) {
	r.wg.Add(1)
	utils.GoSafe(func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.cfg.RateLimitCleanupDuration)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				r.log.Info("Received signal to stop Telegram rate limiter cleanup expired")
				return
			case <-ticker.C:
				r.mu.Lock()
				now := time.Now()
				for chatID, entry := range r.userLimiters {
					if now.Sub(entry.lastAccess) > r.cfg.RatelimitExpireDuration {
						delete(r.userLimiters, chatID)
					}
				}
				r.mu.Unlock()
			}
		}
	})
}

func (r *TelegramRateLimiter) StopCleanupExpired() {
	r.wg.Wait()
	r.log.Info("Telegram rate limiter stopped")
}
