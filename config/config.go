package config

import (
	"fmt"
	"io/ioutil"

	"btcbalancebot/data"
	"btcbalancebot/utils"

	"gopkg.in/yaml.v3"
)

// NewConfig - reads the application configuration from the provided path
// and returns an AppConfig struct or an error if something goes wrong.
// The file is re-read on every call so edits take effect on the next render.
func NewConfig(configPath string) (*data.AppConfig, error) {
	bytes, err := ioutil.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg := &data.AppConfig{}
	err = yaml.Unmarshal(bytes, cfg)
	if err != nil {
		return nil, err
	}

	err = validate(cfg)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func validate(cfg *data.AppConfig) error {
	required := []struct {
		key     string
		missing bool
	}{
		{"telegram_token", cfg.TelegramToken == ""},
		{"money", cfg.Money == ""},
		{"money_format", cfg.MoneyFormat == ""},
		{"wallets", len(cfg.Wallets) == 0},
		{"wallet_view", len(cfg.WalletView) == 0},
		{"failed_wallet_view", len(cfg.FailedWalletView) == 0},
		{"updating", len(cfg.Updating) == 0},
	}
	for _, field := range required {
		if field.missing {
			return fmt.Errorf("missing required config key %q", field.key)
		}
	}

	return nil
}

func applyDefaults(cfg *data.AppConfig) {
	if cfg.BotTitle == "" {
		cfg.BotTitle = utils.DefaultBotTitle
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = utils.DefaultDateFormat
	}
	if cfg.HourFormat == "" {
		cfg.HourFormat = utils.DefaultHourFormat
	}
	if cfg.UpdateButton == "" {
		cfg.UpdateButton = utils.DefaultUpdateButton
	}
}
