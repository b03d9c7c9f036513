package bot

import (
	"math/rand"
	"time"

	"btcbalancebot/config"
	"btcbalancebot/metrics"
	"btcbalancebot/view"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

func (b *Bot) callbackQueryReceived(cb *tgbotapi.CallbackQuery) {
	b.tgBot.AnswerCallbackQuery(tgbotapi.NewCallback(cb.ID, "Ok"))

	if cb.Data != "update" || cb.Message == nil {
		return
	}

	b.refreshMessage(cb.Message.Chat.ID, cb.Message.MessageID)
}

// refreshMessage - the two-phase update of a shown conversation: first the
// message is replaced with an updating placeholder and an inactive button,
// then with the freshly rendered view. A render error leaves the message at
// the placeholder and is only logged.
func (b *Bot) refreshMessage(chatID int64, messageID int) {
	cfg, err := config.NewConfig(b.configPath)
	if err != nil {
		log.Error("can not load config", "error", err)
		return
	}

	placeholder := cfg.Updating[rand.Intn(len(cfg.Updating))]
	b.editMessage(chatID, messageID, placeholder, inactiveKeyboard(cfg.UpdateButton))

	text, err := view.Render(cfg, b.explorer, time.Now())
	if err != nil {
		log.Error("can not render view", "chat", chatID, "error", err)
		metrics.RenderErrors.Inc()
		return
	}
	metrics.Renders.Inc()

	b.editMessage(chatID, messageID, text, refreshKeyboard(cfg.UpdateButton))
}
