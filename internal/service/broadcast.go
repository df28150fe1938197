package service

import (
	"context"
	"fmt"
	"strings"
	"trading-signal-bot/config"
	"trading-signal-bot/internal/dto"
	"trading-signal-bot/internal/repository"
	"trading-signal-bot/internal/session"
	"trading-signal-bot/pkg/logger"
	"trading-signal-bot/pkg/utils"

	"gopkg.in/telebot.v3"
)

// CapitalPercentUnique is the callback unique of the capital-percentage
// buttons attached to every dispatched signal.
const CapitalPercentUnique = "capital_percent"

// capitalPercentChoices offered under each signal message.
var capitalPercentChoices = []float64{1, 2, 5}

type BroadcastService interface {
	Broadcast(ctx context.Context, message string) (*dto.BroadcastReport, error)
	SendSignal(ctx context.Context, signal dto.Signal) (*dto.BroadcastReport, error)
}

type broadcastService struct {
	cfg          *config.Config
	log          *logger.Logger
	verifiedRepo repository.VerifiedUserRepository
	sessions     *session.Store
	notifier     UserNotifier
}

func NewBroadcastService(
	cfg *config.Config,
	log *logger.Logger,
	verifiedRepo repository.VerifiedUserRepository,
	sessions *session.Store,
	notifier UserNotifier,
) BroadcastService {
	return &broadcastService{
		cfg:          cfg,
		log:          log,
		verifiedRepo: verifiedRepo,
		sessions:     sessions,
		notifier:     notifier,
	}
}

// Broadcast fans the message out to every verified user sequentially. A
// failing recipient is counted and skipped, never aborting the loop.
func (s *broadcastService) Broadcast(ctx context.Context, message string) (*dto.BroadcastReport, error) {
	return s.fanOut(ctx, message, nil, nil)
}

// SendSignal renders the trading signal, attaches the capital-percentage
// keyboard and fans it out. Each successful recipient gets the entry and
// stop-loss seeded into their session for the sizing flow.
func (s *broadcastService) SendSignal(ctx context.Context, signal dto.Signal) (*dto.BroadcastReport, error) {
	message, err := RenderSignalMessage(signal)
	if err != nil {
		return nil, err
	}

	menu := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(capitalPercentChoices))
	for _, percent := range capitalPercentChoices {
		btn := menu.Data(
			fmt.Sprintf("💼 محاسبه با %s%% سرمایه", utils.FormatAmount(percent)),
			CapitalPercentUnique,
			fmt.Sprintf("%s:%s", utils.FormatAmount(percent), utils.FormatAmount(signal.Leverage)),
		)
		rows = append(rows, menu.Row(btn))
	}
	menu.Inline(rows...)

	seed := func(userID int64) {
		s.sessions.SeedSignal(userID, signal.Entry, signal.StopLoss)
	}

	return s.fanOut(ctx, message, menu, seed)
}

func (s *broadcastService) fanOut(ctx context.Context, message string, menu *telebot.ReplyMarkup, onDelivered func(userID int64)) (*dto.BroadcastReport, error) {
	ids, err := s.verifiedRepo.GetAllIDs(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to list verified user ids", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to list verified user ids: %w", err)
	}

	report := &dto.BroadcastReport{Total: len(ids)}
	for _, userID := range ids {
		var errSend error
		if menu != nil {
			errSend = s.notifier.SendMessageUser(ctx, message, userID, menu)
		} else {
			errSend = s.notifier.SendMessageUser(ctx, message, userID)
		}
		if errSend != nil {
			s.log.ErrorContext(ctx, "Failed to send message to user",
				logger.ErrorField(errSend),
				logger.Int64Field("user_id", userID),
			)
			report.Failed++
			continue
		}
		report.Success++
		if onDelivered != nil {
			onDelivered(userID)
		}
	}

	return report, nil
}

// RenderSignalMessage builds the user-facing signal text.
func RenderSignalMessage(signal dto.Signal) (string, error) {
	lossPercent, err := LossPercent(signal.Entry, signal.StopLoss)
	if err != nil {
		return "", err
	}

	sb := strings.Builder{}
	sb.WriteString("📊 سیگنال جدید فیوچرز:\n\n")
	sb.WriteString(fmt.Sprintf("📈 جهت: %s\n", Direction(signal.Entry, signal.StopLoss)))
	sb.WriteString(fmt.Sprintf("💰 نقطه ورود: %s\n", utils.FormatAmount(signal.Entry)))
	sb.WriteString(fmt.Sprintf("🛑 حد ضرر: %s\n", utils.FormatAmount(signal.StopLoss)))
	sb.WriteString(fmt.Sprintf("🎯 حد سود: %s\n", utils.FormatAmount(signal.TakeProfit)))
	sb.WriteString(fmt.Sprintf("⚡️ اهرم: %sx\n", utils.FormatAmount(signal.Leverage)))
	sb.WriteString(fmt.Sprintf("📉 درصد ضرر: %.2f%%\n\n", lossPercent))
	sb.WriteString("👇 برای محاسبه حجم معامله یکی از گزینه‌های زیر را انتخاب کنید:")

	return sb.String(), nil
}
