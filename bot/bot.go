package bot

import (
	"sync"
	"time"

	"btcbalancebot/data"
	"btcbalancebot/explorer"

	logger "github.com/ElrondNetwork/elrond-go-logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

var log = logger.GetOrCreate("bot")

// telegramAPI - the subset of the Telegram client the bot relies on
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	AnswerCallbackQuery(config tgbotapi.CallbackConfig) (tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) (tgbotapi.UpdatesChannel, error)
}

// Bot - holds the required fields of the bot application
type Bot struct {
	tgBot      telegramAPI
	explorer   *explorer.Client
	configPath string

	mutTimers sync.Mutex
	timers    map[int64]*time.Ticker
}

// NewBot - creates a new Bot object
func NewBot(cfg *data.AppConfig, configPath string, explorerClient *explorer.Client) (*Bot, error) {
	tgBot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Error("can not create telegram bot", "error", err)
		return nil, err
	}

	telegramBot := &Bot{
		tgBot:      tgBot,
		explorer:   explorerClient,
		configPath: configPath,
		timers:     make(map[int64]*time.Ticker),
	}

	return telegramBot, nil
}

// StartTasks - starts bot's update loop
func (b *Bot) StartTasks() {
	go func() {
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		updates, err := b.tgBot.GetUpdatesChan(u)
		if err != nil {
			log.Error("can not get Telegram bot updates", "error", err)
			panic(err)
		}
		for update := range updates {
			if update.Message != nil && update.Message.IsCommand() {
				b.commandReceived(update.Message)
				continue
			}
			if update.CallbackQuery != nil {
				b.callbackQueryReceived(update.CallbackQuery)
			}
		}
	}()
}

// registerRefresh - registers the auto refresh timer for a conversation.
// At most one timer per chat; later registrations are ignored. Timers are
// never cancelled and live for the process lifetime.
func (b *Bot) registerRefresh(chatID int64, messageID int, interval time.Duration) {
	if interval <= 0 {
		return
	}

	b.mutTimers.Lock()
	defer b.mutTimers.Unlock()

	if _, exists := b.timers[chatID]; exists {
		return
	}

	ticker := time.NewTicker(interval)
	b.timers[chatID] = ticker
	go func() {
		for range ticker.C {
			b.refreshMessage(chatID, messageID)
		}
	}()

	log.Info("refresh timer registered", "chat", chatID, "interval", interval.String())
}

func (b *Bot) editMessage(chatID int64, messageID int, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	edit.ReplyMarkup = &keyboard
	_, err := b.tgBot.Send(edit)
	if err != nil {
		log.Error("can not edit message", "chat", chatID, "error", err)
	}
}
