package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"trading-signal-bot/internal/dto"
	"trading-signal-bot/internal/service"
	"trading-signal-bot/pkg/utils"

	"gopkg.in/telebot.v3"
)

const stopLossFormatError = "❌ لطفاً مقادیر را دقیقاً به این فرمت وارد کنید:\n20\n3"

func (t *TelegramBotHandler) handleBtnCalcStopLoss(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID
	t.sessions.Reset(userID)
	t.sessions.SetState(userID, dto.StateAwaitingStopLossInput)

	_, err := t.telegram.Edit(ctx, c, c.Message(),
		"لطفاً مقادیر را به صورت زیر وارد کنید:\n\n"+
			"🔹 بالایی: سرمایه دلاری شما\n"+
			"🔸 پایینی: میزان ضرر دلاری مورد نظر\n\n"+
			"مثال:\n20\n3",
		backMenu(),
	)
	return err
}

// handleStopLossInput computes the loss percentage from two numeric lines.
// The session is cleared on failure as well; retrying goes back through the
// menu.
func (t *TelegramBotHandler) handleStopLossInput(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID
	defer t.sessions.Reset(userID)

	msg := stopLossFormatError
	if capital, loss, ok := ParseStopLossInput(c.Text()); ok {
		percent, err := service.StopLossPercent(capital, loss)
		if err == nil {
			msg = fmt.Sprintf(
				"📊 محاسبه حد ضرر:\n\n💰 سرمایه شما: %s دلار\n📉 ضرر مورد نظر: %s دلار\n📈 درصد ضرر: %.2f%%",
				utils.FormatAmount(capital), utils.FormatAmount(loss), percent,
			)
		}
	}

	_, err := t.telegram.Send(ctx, c, msg, backMenu())
	return err
}

func (t *TelegramBotHandler) handleBtnCapitalPercent(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID

	percent, leverage, err := ParseCapitalPercentPayload(c.Data())
	if err != nil {
		return t.telegram.Respond(ctx, c, &telebot.CallbackResponse{Text: "⚠️ دکمه نامعتبر است."})
	}

	data := t.sessions.GetData(userID)
	data.CapitalPercent = percent
	data.Leverage = leverage
	t.sessions.SetData(userID, data)
	t.sessions.SetState(userID, dto.StateAwaitingCapitalAmount)

	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	_, err = t.telegram.Send(ctx, c, "💵 لطفاً میزان سرمایه دلاری خود را وارد کنید:", backMenu())
	return err
}

func (t *TelegramBotHandler) handleCapitalAmount(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID

	capital, errParse := strconv.ParseFloat(strings.TrimSpace(c.Text()), 64)
	if errParse != nil || capital <= 0 {
		_, err := t.telegram.Send(ctx, c, "❌ لطفاً سرمایه را به صورت یک عدد وارد کنید. مثال: 1000", backMenu())
		return err
	}

	data := t.sessions.GetData(userID)
	tradeAmount := service.PositionSize(capital, data.CapitalPercent, data.Leverage)

	sb := strings.Builder{}
	sb.WriteString("📊 محاسبه حجم معامله:\n\n")
	sb.WriteString(fmt.Sprintf("💰 سرمایه: %s دلار\n", utils.FormatAmount(capital)))
	sb.WriteString(fmt.Sprintf("📈 درصد سرمایه: %s%%\n", utils.FormatAmount(data.CapitalPercent)))
	sb.WriteString(fmt.Sprintf("⚡️ اهرم: %sx\n", utils.FormatAmount(data.Leverage)))
	sb.WriteString(fmt.Sprintf("💵 حجم معامله: %s دلار\n", utils.FormatAmount(tradeAmount)))

	if lossAmount, err := service.LossAmount(tradeAmount, data.Entry, data.StopLoss); err == nil {
		sb.WriteString(fmt.Sprintf("📉 ضرر احتمالی: %s دلار\n", utils.FormatAmount(lossAmount)))
	}

	t.sessions.Reset(userID)
	_, err := t.telegram.Send(ctx, c, sb.String(), backMenu())
	return err
}

// ParseStopLossInput expects two non-empty numeric lines: capital, loss.
func ParseStopLossInput(text string) (capital, loss float64, ok bool) {
	lines := utils.NonEmptyLines(text)
	if len(lines) < 2 {
		return 0, 0, false
	}

	capital, errCapital := strconv.ParseFloat(lines[0], 64)
	loss, errLoss := strconv.ParseFloat(lines[1], 64)
	if errCapital != nil || errLoss != nil {
		return 0, 0, false
	}
	return capital, loss, true
}

// ParseCapitalPercentPayload decodes the "<percent>:<leverage>" callback data
// carried by the capital-percentage buttons.
func ParseCapitalPercentPayload(payload string) (percent, leverage float64, err error) {
	parts := strings.Split(payload, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid capital percent payload: %q", payload)
	}

	percent, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid percent in payload: %w", err)
	}
	leverage, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid leverage in payload: %w", err)
	}
	return percent, leverage, nil
}
