package telegram

import (
	"strconv"
	"trading-signal-bot/config"
	"trading-signal-bot/internal/service"

	"gopkg.in/telebot.v3"
)

var (
	btnRegisterSignal   = telebot.Btn{Text: "📝 ثبت نام سیگنال فیوچرز", Unique: "register_signal"}
	btnSupport          = telebot.Btn{Text: "🛟 پشتیبانی", Unique: "support"}
	btnCalcStopLoss     = telebot.Btn{Text: "📉 محاسبه حد ضرر", Unique: "calc_stop_loss"}
	btnExchangesBrokers = telebot.Btn{Text: "🏦 صرافی‌ها و بروکرهای ویژه", Unique: "exchanges_brokers"}
	btnBackToMenu       = telebot.Btn{Text: "🔙 بازگشت به منو", Unique: "back_to_menu"}
	btnCancelBroadcast  = telebot.Btn{Text: "❌ لغو", Unique: "cancel_broadcast"}
	btnVerifyPayment    = telebot.Btn{Text: "✅ تایید پرداخت", Unique: "verify_payment"}
	btnRejectPayment    = telebot.Btn{Text: "❌ رد پرداخت", Unique: "reject_payment"}
	btnCapitalPercent   = telebot.Btn{Unique: service.CapitalPercentUnique}
)

const (
	backToMenuText    = "🔙 بازگشت به منو"
	sendPhoneText     = "📱 ارسال شماره"
	menuPrompt        = "لطفا گزینه مورد نظر را انتخاب کنید:"
	welcomePrompt     = "سلام! به ربات خوش آمدید.\nلطفا گزینه مورد نظر را انتخاب کنید:"
	accessDeniedText  = "❌ شما دسترسی ندارید!"
	exchangesText     = "🔗 صرافی‌ها و بروکرهای ویژه:\n\n" +
		"1. [Binance](https://www.binance.com/)\n" +
		"2. [Bybit](https://www.bybit.com/)\n" +
		"3. [Deribit](https://www.deribit.com/)\n" +
		"4. [OKX](https://www.okx.com/)\n" +
		"5. [MEXC](https://www.mexc.com/)"
)

func mainMenu(cfg *config.TelegramConfig) *telebot.ReplyMarkup {
	menu := &telebot.ReplyMarkup{}

	btnChannel := menu.URL("📢 کانال تلگرام", cfg.Links.ChannelURL)
	btnYoutube := menu.URL("🎥 یوتیوب", cfg.Links.YoutubeURL)
	btnInstagram := menu.URL("📷 اینستاگرام", cfg.Links.InstagramURL)
	btnWebsite := menu.URL("🌐 وب‌سایت", cfg.Links.WebsiteURL)

	menu.Inline(
		menu.Row(btnChannel, btnYoutube),
		menu.Row(btnInstagram, btnWebsite),
		menu.Row(menu.Data(btnRegisterSignal.Text, btnRegisterSignal.Unique)),
		menu.Row(menu.Data(btnSupport.Text, btnSupport.Unique)),
		menu.Row(menu.Data(btnCalcStopLoss.Text, btnCalcStopLoss.Unique)),
		menu.Row(menu.Data(btnExchangesBrokers.Text, btnExchangesBrokers.Unique)),
	)
	return menu
}

func backMenu() *telebot.ReplyMarkup {
	menu := &telebot.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data(btnBackToMenu.Text, btnBackToMenu.Unique)))
	return menu
}

func cancelBroadcastMenu() *telebot.ReplyMarkup {
	menu := &telebot.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data(btnCancelBroadcast.Text, btnCancelBroadcast.Unique)))
	return menu
}

// phoneRequestKeyboard is a reply keyboard because contact sharing is not
// available on inline buttons.
func phoneRequestKeyboard() *telebot.ReplyMarkup {
	menu := &telebot.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Contact(sendPhoneText)),
		menu.Row(menu.Text(backToMenuText)),
	)
	return menu
}

// adminReviewKeyboard carries the submitter's user id in the callback payload
// so the decision handlers can find the pending record.
func adminReviewKeyboard(userID int64) *telebot.ReplyMarkup {
	menu := &telebot.ReplyMarkup{}
	payload := strconv.FormatInt(userID, 10)
	menu.Inline(
		menu.Row(menu.Data(btnVerifyPayment.Text, btnVerifyPayment.Unique, payload)),
		menu.Row(menu.Data(btnRejectPayment.Text, btnRejectPayment.Unique, payload)),
	)
	return menu
}
