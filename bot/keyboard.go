package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

func refreshKeyboard(label string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "update"),
		),
	)
}

// inactiveKeyboard - the button variant shown while a refresh is in flight.
// The button stays in place so the layout does not jump, but presses are
// ignored by the callback handler.
func inactiveKeyboard(label string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "noop"),
		),
	)
}
