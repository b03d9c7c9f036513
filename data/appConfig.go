package data

import "time"

const defaultRefreshSeconds = 3600

// Wallet - a named Bitcoin address tracked by the bot
type Wallet struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

// AppConfig holds the application configuration read from configs.yml
type AppConfig struct {
	BotTitle         string   `yaml:"bot_title"`
	TelegramToken    string   `yaml:"telegram_token"`
	AllowedUserIDs   []int    `yaml:"allowed_user_ids"`
	UpdateEach       *int     `yaml:"update_each"`
	DateFormat       string   `yaml:"date_format"`
	HourFormat       string   `yaml:"hour_format"`
	Money            string   `yaml:"money"`
	MoneyFormat      string   `yaml:"money_format"`
	Wallets          []Wallet `yaml:"wallets"`
	Title            []string `yaml:"title"`
	WalletView       []string `yaml:"wallet_view"`
	FailedWalletView []string `yaml:"failed_wallet_view"`
	ExtraContent     []string `yaml:"extra_content"`
	Updating         []string `yaml:"updating"`
	UpdateButton     string   `yaml:"update_button"`
	MetricsListen    string   `yaml:"metrics_listen"`
}

// RefreshInterval - the configured auto refresh period. An absent key falls
// back to one hour, an explicit 0 disables the refresh timer.
func (c *AppConfig) RefreshInterval() time.Duration {
	if c.UpdateEach == nil {
		return defaultRefreshSeconds * time.Second
	}

	return time.Duration(*c.UpdateEach) * time.Second
}

// IsUserAllowed - whether a Telegram user may issue the start command.
// An empty allow list means anyone may.
func (c *AppConfig) IsUserAllowed(userID int) bool {
	if len(c.AllowedUserIDs) == 0 {
		return true
	}
	for _, id := range c.AllowedUserIDs {
		if id == userID {
			return true
		}
	}

	return false
}
