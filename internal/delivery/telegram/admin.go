package telegram

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"trading-signal-bot/internal/dto"
	"trading-signal-bot/pkg/logger"

	"gopkg.in/telebot.v3"
)

func (t *TelegramBotHandler) handleAdminBroadcast(ctx context.Context, c telebot.Context) error {
	if !t.isAdmin(c) {
		_, err := t.telegram.Send(ctx, c, accessDeniedText)
		return err
	}

	t.sessions.SetState(c.Sender().ID, dto.StateAwaitingBroadcastMessage)
	_, err := t.telegram.Send(ctx, c, "📢 پیام خود را برای کاربران تایید شده وارد کنید:", cancelBroadcastMenu())
	return err
}

func (t *TelegramBotHandler) handleBroadcastMessage(ctx context.Context, c telebot.Context) error {
	if !t.isAdmin(c) {
		return nil
	}
	defer t.sessions.Reset(c.Sender().ID)

	report, err := t.service.BroadcastService.Broadcast(ctx, c.Text())
	if err != nil {
		_, errSend := t.telegram.Send(ctx, c, "❌ خطا در ارسال پیام همگانی")
		if errSend != nil {
			return errSend
		}
		return err
	}

	_, err = t.telegram.Send(ctx, c, fmt.Sprintf(
		"✅ پیام به %d کاربر ارسال شد\n❌ تعداد ناموفق: %d\n🔹 کل کاربران: %d",
		report.Success, report.Failed, report.Total,
	))
	return err
}

func (t *TelegramBotHandler) handleBtnCancelBroadcast(ctx context.Context, c telebot.Context) error {
	if !t.isAdmin(c) {
		return t.telegram.Respond(ctx, c, &telebot.CallbackResponse{Text: accessDeniedText})
	}

	t.sessions.Reset(c.Sender().ID)
	_, err := t.telegram.Edit(ctx, c, c.Message(), "❌ ارسال پیام لغو شد.")
	return err
}

func (t *TelegramBotHandler) handleListUsers(ctx context.Context, c telebot.Context) error {
	if !t.isAdmin(c) {
		_, err := t.telegram.Send(ctx, c, accessDeniedText)
		return err
	}

	users, err := t.repo.VerifiedUserRepo.GetAll(ctx)
	if err != nil {
		t.log.ErrorContext(ctx, "Failed to list verified users", logger.ErrorField(err))
		_, errSend := t.telegram.Send(ctx, c, "❌ خطا در دریافت لیست کاربران")
		return errSend
	}

	if len(users) == 0 {
		_, err := t.telegram.Send(ctx, c, "هنوز کاربری تایید نشده است")
		return err
	}

	sb := strings.Builder{}
	sb.WriteString("📋 لیست کاربران تایید شده:\n\n")
	for _, user := range users {
		sb.WriteString(fmt.Sprintf(
			"👤 نام: %s\n📞 تلفن: %s\n🆔 آیدی: %d\n📌 کد ملی: %s\n🗓 تاریخ ثبت: %s\n──────────────────\n",
			user.FullName, user.Phone, user.UserID, user.NationalID,
			user.RegisteredAt.Format("2006-01-02 15:04:05"),
		))
	}

	_, err = t.telegram.Send(ctx, c, sb.String())
	return err
}

func (t *TelegramBotHandler) handleRemoveUser(ctx context.Context, c telebot.Context) error {
	if !t.isAdmin(c) {
		_, err := t.telegram.Send(ctx, c, accessDeniedText)
		return err
	}

	args := c.Args()
	if len(args) == 0 {
		_, err := t.telegram.Send(ctx, c, "⚠️ لطفاً آیدی کاربر را وارد کنید:\n/remove_user <آیدی>")
		return err
	}

	userID, errParse := strconv.ParseInt(args[0], 10, 64)
	if errParse != nil {
		_, err := t.telegram.Send(ctx, c, fmt.Sprintf("❌ کاربر با آیدی %s یافت نشد.", args[0]))
		return err
	}

	user, err := t.repo.VerifiedUserRepo.GetByUserID(ctx, userID)
	if err != nil {
		t.log.ErrorContext(ctx, "Failed to look up verified user", logger.ErrorField(err))
		_, errSend := t.telegram.Send(ctx, c, "❌ خطا در حذف کاربر")
		return errSend
	}
	if user == nil {
		_, err := t.telegram.Send(ctx, c, fmt.Sprintf("❌ کاربر با آیدی %d یافت نشد.", userID))
		return err
	}

	if err := t.repo.VerifiedUserRepo.Delete(ctx, userID); err != nil {
		t.log.ErrorContext(ctx, "Failed to remove verified user",
			logger.ErrorField(err),
			logger.Int64Field("user_id", userID),
		)
		_, errSend := t.telegram.Send(ctx, c, "❌ خطا در حذف کاربر")
		return errSend
	}

	_, err = t.telegram.Send(ctx, c, fmt.Sprintf(
		"✅ کاربر با مشخصات زیر حذف شد:\n\n👤 نام: %s\n📞 تلفن: %s\n🆔 آیدی: %d\n📌 کد ملی: %s",
		user.FullName, user.Phone, user.UserID, user.NationalID,
	))
	return err
}

func (t *TelegramBotHandler) handleExport(ctx context.Context, c telebot.Context) error {
	if !t.isAdmin(c) {
		_, err := t.telegram.Send(ctx, c, accessDeniedText)
		return err
	}

	path, err := t.service.ExportService.ExportVerifiedUsers(ctx)
	if err != nil {
		t.log.ErrorContext(ctx, "Failed to export verified users", logger.ErrorField(err))
		_, errSend := t.telegram.Send(ctx, c, "❌ خطا در ساخت فایل خروجی")
		return errSend
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			t.log.WarnContext(ctx, "Failed to remove export file", logger.ErrorField(err))
		}
	}()

	doc := &telebot.Document{File: telebot.FromDisk(path), FileName: "verified_users.xlsx"}
	return t.telegram.SendDocumentUser(ctx, doc, c.Sender().ID)
}

func (t *TelegramBotHandler) handleSendSignal(ctx context.Context, c telebot.Context) error {
	if !t.isAdmin(c) {
		_, err := t.telegram.Send(ctx, c, accessDeniedText)
		return err
	}

	args := c.Args()
	if len(args) != 4 {
		_, err := t.telegram.Send(ctx, c,
			"📊 برای ارسال سیگنال دستور را با مقادیر کامل ارسال کنید:\n"+
				"/send_signal <entry> <stop_loss> <take_profit> <leverage>\n\n"+
				"مثال:\n/send_signal 50000 49500 52000 10")
		return err
	}

	signal, errParse := parseSignalArgs(args)
	if errParse == nil {
		errParse = t.validator.Struct(signal)
	}
	if errParse != nil {
		_, err := t.telegram.Send(ctx, c, "❌ مقادیر سیگنال نامعتبر است. هر چهار مقدار باید عدد مثبت باشند.")
		return err
	}

	report, err := t.service.BroadcastService.SendSignal(ctx, signal)
	if err != nil {
		t.log.ErrorContext(ctx, "Failed to dispatch signal", logger.ErrorField(err))
		_, errSend := t.telegram.Send(ctx, c, "❌ خطا در ارسال سیگنال")
		return errSend
	}

	_, err = t.telegram.Send(ctx, c, fmt.Sprintf(
		"✅ سیگنال به %d کاربر ارسال شد\n❌ تعداد ناموفق: %d\n🔹 کل کاربران: %d",
		report.Success, report.Failed, report.Total,
	))
	return err
}

func (t *TelegramBotHandler) handleBtnVerifyPayment(ctx context.Context, c telebot.Context) error {
	if !t.isAdmin(c) {
		return t.telegram.Respond(ctx, c, &telebot.CallbackResponse{Text: accessDeniedText})
	}

	userID, errParse := strconv.ParseInt(strings.TrimSpace(c.Data()), 10, 64)
	if errParse != nil {
		_, err := t.telegram.Edit(ctx, c, c.Message(), "❌ درخواست تأیید یافت نشد!")
		return err
	}

	user, err := t.service.VerificationService.Approve(ctx, userID)
	if err != nil {
		t.log.ErrorContext(ctx, "Failed to approve pending verification",
			logger.ErrorField(err),
			logger.Int64Field("user_id", userID),
		)
		return t.telegram.Respond(ctx, c, &telebot.CallbackResponse{Text: "❌ خطا در تایید پرداخت"})
	}
	if user == nil {
		_, err := t.telegram.Edit(ctx, c, c.Message(), "❌ درخواست تأیید یافت نشد!")
		return err
	}

	_, err = t.telegram.Edit(ctx, c, c.Message(), fmt.Sprintf(
		"✅ کاربر جدید ثبت شد:\n\n👤 نام: %s\n📞 تلفن: %s\n🆔 آیدی: %d\n📌 کد ملی: %s\n🗓 تاریخ ثبت: %s",
		user.FullName, user.Phone, user.UserID, user.NationalID,
		user.RegisteredAt.Format("2006-01-02 15:04:05"),
	))
	return err
}

func (t *TelegramBotHandler) handleBtnRejectPayment(ctx context.Context, c telebot.Context) error {
	if !t.isAdmin(c) {
		return t.telegram.Respond(ctx, c, &telebot.CallbackResponse{Text: accessDeniedText})
	}

	userID, errParse := strconv.ParseInt(strings.TrimSpace(c.Data()), 10, 64)
	if errParse != nil {
		_, err := t.telegram.Edit(ctx, c, c.Message(), "❌ درخواست تأیید یافت نشد!")
		return err
	}

	found, err := t.service.VerificationService.Reject(ctx, userID)
	if err != nil {
		t.log.ErrorContext(ctx, "Failed to reject pending verification",
			logger.ErrorField(err),
			logger.Int64Field("user_id", userID),
		)
		return t.telegram.Respond(ctx, c, &telebot.CallbackResponse{Text: "❌ خطا در رد پرداخت"})
	}
	if !found {
		_, err := t.telegram.Edit(ctx, c, c.Message(), "❌ درخواست تأیید یافت نشد!")
		return err
	}

	_, err = t.telegram.Edit(ctx, c, c.Message(), fmt.Sprintf(
		"❌ پرداخت کاربر رد شد.\n\nتوسط ادمین در تاریخ %s انجام شد",
		time.Now().Format("2006-01-02 15:04:05"),
	))
	return err
}

func parseSignalArgs(args []string) (dto.Signal, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return dto.Signal{}, fmt.Errorf("invalid signal argument %q: %w", arg, err)
		}
		values[i] = v
	}
	return dto.Signal{
		Entry:      values[0],
		StopLoss:   values[1],
		TakeProfit: values[2],
		Leverage:   values[3],
	}, nil
}
