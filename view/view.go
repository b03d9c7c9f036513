package view

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"btcbalancebot/data"
	"btcbalancebot/explorer"
	"btcbalancebot/money"
)

var placeholderRegexp = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Substitute - joins the template lines with newlines and resolves every
// {key} placeholder from the replacement set. A placeholder with no entry in
// the set is an error; unused entries are ignored.
func Substitute(lines []string, replacements map[string]string) (string, error) {
	template := strings.Join(lines, "\n")

	missing := ""
	text := placeholderRegexp.ReplaceAllStringFunc(template, func(match string) string {
		key := match[1 : len(match)-1]
		value, ok := replacements[key]
		if !ok {
			if missing == "" {
				missing = key
			}
			return match
		}
		return value
	})
	if missing != "" {
		return "", fmt.Errorf("template references undefined key %q", missing)
	}

	return text, nil
}

// Render - builds the full display text: title, one segment per wallet and
// the extra content, concatenated without separators. The fiat quote is
// fetched once and reused for every wallet; a quote or template error aborts
// the whole render, a failed balance lookup only switches that wallet to the
// failure template.
func Render(cfg *data.AppConfig, client *explorer.Client, now time.Time) (string, error) {
	rate, err := client.Quote(cfg.Money)
	if err != nil {
		return "", err
	}

	oneBTC, err := money.Format(1, rate, cfg.Money, cfg.MoneyFormat)
	if err != nil {
		return "", err
	}

	header := map[string]string{
		"title":       cfg.BotTitle,
		"update_date": now.Format(cfg.DateFormat),
		"update_time": now.Format(cfg.HourFormat),
		"btc_value":   oneBTC,
		"currency":    cfg.Money,
	}

	sb := &strings.Builder{}

	text, err := Substitute(cfg.Title, header)
	if err != nil {
		return "", err
	}
	sb.WriteString(text)

	for _, wallet := range cfg.Wallets {
		text, err = renderWallet(cfg, client, wallet, rate, header)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}

	text, err = Substitute(cfg.ExtraContent, header)
	if err != nil {
		return "", err
	}
	sb.WriteString(text)

	return sb.String(), nil
}

func renderWallet(cfg *data.AppConfig, client *explorer.Client, wallet data.Wallet,
	rate float64, header map[string]string) (string, error) {
	replacements := map[string]string{
		"wallet":         wallet.Name,
		"wallet_address": wallet.Address,
	}
	for key, value := range header {
		replacements[key] = value
	}

	balance := client.Balance(wallet.Address)
	if balance.Failed {
		return Substitute(cfg.FailedWalletView, replacements)
	}

	fiat, err := money.Format(balance.BTC, rate, cfg.Money, cfg.MoneyFormat)
	if err != nil {
		return "", err
	}
	replacements["btc_balance"] = strconv.FormatFloat(balance.BTC, 'f', -1, 64)
	replacements["money_balance"] = fiat

	return Substitute(cfg.WalletView, replacements)
}
