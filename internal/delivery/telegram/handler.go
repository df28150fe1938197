package telegram

import (
	"context"
	"time"

	"gopkg.in/telebot.v3"
)

func (t *TelegramBotHandler) WithContext(handler func(ctx context.Context, c telebot.Context) error) func(c telebot.Context) error {
	return func(c telebot.Context) error {
		ctx, cancel := context.WithTimeout(t.ctx, 5*time.Minute)
		defer cancel()

		return handler(ctx, c)
	}
}

func (t *TelegramBotHandler) RegisterHandlers() {
	t.bot.Handle("/start", t.WithContext(t.handleStart))

	// admin commands
	t.bot.Handle("/admin23", t.WithContext(t.handleAdminBroadcast))
	t.bot.Handle("/list_users", t.WithContext(t.handleListUsers))
	t.bot.Handle("/remove_user", t.WithContext(t.handleRemoveUser))
	t.bot.Handle("/export", t.WithContext(t.handleExport))
	t.bot.Handle("/send_signal", t.WithContext(t.handleSendSignal))

	// conversation inputs
	t.bot.Handle(telebot.OnText, t.WithContext(t.handleTextMessage))
	t.bot.Handle(telebot.OnContact, t.WithContext(t.handleContact))
	t.bot.Handle(telebot.OnPhoto, t.WithContext(t.handlePhoto))

	// menu buttons
	t.bot.Handle(&btnRegisterSignal, t.WithContext(t.handleBtnRegisterSignal))
	t.bot.Handle(&btnSupport, t.WithContext(t.handleBtnSupport))
	t.bot.Handle(&btnCalcStopLoss, t.WithContext(t.handleBtnCalcStopLoss))
	t.bot.Handle(&btnExchangesBrokers, t.WithContext(t.handleBtnExchangesBrokers))
	t.bot.Handle(&btnBackToMenu, t.WithContext(t.handleBtnBackToMenu))

	// signal sizing
	t.bot.Handle(&btnCapitalPercent, t.WithContext(t.handleBtnCapitalPercent))

	// admin moderation buttons
	t.bot.Handle(&btnCancelBroadcast, t.WithContext(t.handleBtnCancelBroadcast))
	t.bot.Handle(&btnVerifyPayment, t.WithContext(t.handleBtnVerifyPayment))
	t.bot.Handle(&btnRejectPayment, t.WithContext(t.handleBtnRejectPayment))
}

func (t *TelegramBotHandler) handleStart(ctx context.Context, c telebot.Context) error {
	t.sessions.Reset(c.Sender().ID)
	_, err := t.telegram.Send(ctx, c, welcomePrompt, mainMenu(&t.cfg.Telegram))
	return err
}
