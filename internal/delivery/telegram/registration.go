package telegram

import (
	"context"
	"fmt"
	"strings"
	"trading-signal-bot/internal/dto"
	"trading-signal-bot/pkg/logger"

	"gopkg.in/telebot.v3"
)

func (t *TelegramBotHandler) handleBtnRegisterSignal(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID
	t.sessions.Reset(userID)
	t.sessions.SetState(userID, dto.StateAwaitingPhone)

	if _, err := t.telegram.Edit(ctx, c, c.Message(), "لطفاً شماره خود را با استفاده از دکمه زیر ارسال کنید:"); err != nil {
		return err
	}
	_, err := t.telegram.Send(ctx, c, "روی دکمه زیر بزنید:", phoneRequestKeyboard())
	return err
}

func (t *TelegramBotHandler) handleContact(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID
	if t.sessions.GetState(userID) != dto.StateAwaitingPhone {
		return nil
	}

	contact := c.Message().Contact
	if contact == nil {
		return nil
	}

	data := t.sessions.GetData(userID)
	data.Phone = contact.PhoneNumber
	data.UserID = contact.UserID
	t.sessions.SetData(userID, data)
	t.sessions.SetState(userID, dto.StateAwaitingNameNationalID)

	_, err := t.telegram.Send(ctx, c,
		"✅ شماره شما ثبت شد.\n\n"+
			"لطفاً نام و نام خانوادگی و کد ملی خود را به این صورت وارد کنید:\n\n"+
			"مثال:\nعلی رضایی 1234567890",
		backMenu(),
	)
	return err
}

// handleNameNationalID expects at least two whitespace-separated tokens: the
// last one is the national id, everything before it is the full name.
func (t *TelegramBotHandler) handleNameNationalID(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID

	fullName, nationalID, ok := ParseNameNationalID(c.Text())
	if !ok {
		_, err := t.telegram.Send(ctx, c, "❌ فرمت صحیح: نام و نام خانوادگی + کد ملی\nمثال: علی رضایی 1234567890")
		return err
	}

	data := t.sessions.GetData(userID)
	data.FullName = fullName
	data.NationalID = nationalID
	t.sessions.SetData(userID, data)
	t.sessions.SetState(userID, dto.StateAwaitingPaymentPhoto)

	_, err := t.telegram.Send(ctx, c, "✅ اطلاعات شما ثبت شد.\nلطفاً عکس فیش واریزی را ارسال کنید:", backMenu())
	return err
}

func (t *TelegramBotHandler) handlePhoto(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID
	if t.sessions.GetState(userID) != dto.StateAwaitingPaymentPhoto {
		return nil
	}

	photo := c.Message().Photo
	if photo == nil {
		return nil
	}

	data := t.sessions.GetData(userID)
	pending, err := t.service.VerificationService.SubmitRegistration(ctx, data.UserID, data.Phone, data.FullName, data.NationalID, photo.FileID)
	if err != nil {
		_, errSend := t.telegram.Send(ctx, c, "❌ خطا در ثبت درخواست. لطفاً دوباره تلاش کنید.", backMenu())
		if errSend != nil {
			t.log.ErrorContext(ctx, "Failed to report submission error", logger.ErrorField(errSend))
		}
		return err
	}
	t.sessions.Reset(userID)

	if _, err := t.telegram.Send(ctx, c, "✅ فیش شما دریافت شد و در حال بررسی است.", mainMenu(&t.cfg.Telegram)); err != nil {
		return err
	}

	caption := fmt.Sprintf(
		"📌 درخواست ثبت‌نام جدید:\n\n👤 نام: %s\n🆔 کد ملی: %s\n📞 شماره: %s\n🆔 آیدی کاربر: %d",
		pending.FullName, pending.NationalID, pending.Phone, pending.UserID,
	)
	adminPhoto := &telebot.Photo{File: telebot.File{FileID: pending.PaymentPhotoID}, Caption: caption}

	err = t.telegram.SendPhotoUser(ctx, adminPhoto, t.cfg.Telegram.AdminChatID, adminReviewKeyboard(pending.UserID))
	if err != nil {
		t.log.ErrorContext(ctx, "Failed to push review request to admin",
			logger.ErrorField(err),
			logger.Int64Field("user_id", pending.UserID),
		)
	}
	return err
}

// ParseNameNationalID splits the combined name + national id line.
func ParseNameNationalID(text string) (fullName, nationalID string, ok bool) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) < 2 {
		return "", "", false
	}
	return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1], true
}
