package bot

import (
	"time"

	"btcbalancebot/config"
	"btcbalancebot/metrics"
	"btcbalancebot/utils"
	"btcbalancebot/view"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

func (b *Bot) commandReceived(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	cmd := message.Command()
	name := utils.FormatTgUser(message.From)
	log.Info("command received", "command", cmd, "user", name)

	if cmd != "start" {
		return
	}

	cfg, err := config.NewConfig(b.configPath)
	if err != nil {
		log.Error("can not load config", "error", err)
		return
	}

	if !cfg.IsUserAllowed(message.From.ID) {
		log.Warn("start command from user not in the allow list", "user", name)
		return
	}

	text, err := view.Render(cfg, b.explorer, time.Now())
	if err != nil {
		log.Error("can not render view", "update", message.Text, "error", err)
		metrics.RenderErrors.Inc()
		return
	}
	metrics.Renders.Inc()

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyMarkup = refreshKeyboard(cfg.UpdateButton)
	msg.ParseMode = tgbotapi.ModeMarkdown
	sent, err := b.tgBot.Send(msg)
	if err != nil {
		log.Error("can not send message", "chat", message.Chat.ID, "error", err)
		return
	}

	b.registerRefresh(message.Chat.ID, sent.MessageID, cfg.RefreshInterval())
}
