package telegram

import (
	"context"
	"trading-signal-bot/internal/dto"

	"gopkg.in/telebot.v3"
)

func (t *TelegramBotHandler) isAdmin(c telebot.Context) bool {
	return c.Sender().ID == t.cfg.Telegram.AdminChatID
}

// handleTextMessage routes free text by the sender's conversation state.
// Text outside any flow is ignored, matching the menu-driven UX.
func (t *TelegramBotHandler) handleTextMessage(ctx context.Context, c telebot.Context) error {
	userID := c.Sender().ID

	if c.Text() == backToMenuText {
		t.sessions.Reset(userID)
		_, err := t.telegram.Send(ctx, c, menuPrompt, mainMenu(&t.cfg.Telegram))
		return err
	}

	switch t.sessions.GetState(userID) {
	case dto.StateAwaitingBroadcastMessage:
		return t.handleBroadcastMessage(ctx, c)
	case dto.StateAwaitingNameNationalID:
		return t.handleNameNationalID(ctx, c)
	case dto.StateAwaitingStopLossInput:
		return t.handleStopLossInput(ctx, c)
	case dto.StateAwaitingCapitalAmount:
		return t.handleCapitalAmount(ctx, c)
	}

	return nil
}

func (t *TelegramBotHandler) handleBtnBackToMenu(ctx context.Context, c telebot.Context) error {
	t.sessions.Reset(c.Sender().ID)
	_, err := t.telegram.Edit(ctx, c, c.Message(), menuPrompt, mainMenu(&t.cfg.Telegram))
	return err
}

func (t *TelegramBotHandler) handleBtnSupport(ctx context.Context, c telebot.Context) error {
	_, err := t.telegram.Edit(ctx, c, c.Message(),
		"برای پشتیبانی با "+t.cfg.Telegram.Links.SupportHandle+" تماس بگیرید.",
		backMenu(),
	)
	return err
}

func (t *TelegramBotHandler) handleBtnExchangesBrokers(ctx context.Context, c telebot.Context) error {
	_, err := t.telegram.Edit(ctx, c, c.Message(), exchangesText, backMenu(), telebot.ModeMarkdown)
	return err
}
