package explorer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"btcbalancebot/data"
	"btcbalancebot/metrics"
	"btcbalancebot/utils"

	logger "github.com/ElrondNetwork/elrond-go-logger"
)

var log = logger.GetOrCreate("explorer")

const (
	// DefaultBaseURL - the public block explorer queried for balances and quotes
	DefaultBaseURL = "https://blockchain.info"

	satoshisPerBTC = 100000000
	confirmations  = 6
)

// Client - fetches address balances and fiat quotes from a block explorer
type Client struct {
	baseURL string
}

// NewClient - creates a new explorer Client object. An empty baseURL selects
// the public blockchain.info API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{baseURL: strings.TrimRight(baseURL, "/")}
}

// Balance - retrieves an address' confirmed balance in BTC. Any failure
// (transport error, non-numeric body) is logged and collapses to the Failed
// sentinel; callers must not retry within the same render.
func (c *Client) Balance(address string) data.BalanceResult {
	endpoint := fmt.Sprintf("%s/q/addressbalance/%s?confirmations=%v", c.baseURL, address, confirmations)
	body, err := utils.GetHTTP(endpoint)
	if err != nil {
		log.Error("can not get address balance", "address", address, "error", err)
		metrics.BalanceFailures.Inc()
		return data.BalanceResult{Failed: true}
	}

	satoshi, err := strconv.ParseInt(strings.TrimSpace(string(body)), 10, 64)
	if err != nil {
		log.Error("invalid address balance response", "address", address, "error", err)
		metrics.BalanceFailures.Inc()
		return data.BalanceResult{Failed: true}
	}

	return data.BalanceResult{BTC: float64(satoshi) / satoshisPerBTC}
}

// Quote - retrieves the current fiat value of 1 BTC from the explorer's
// ticker. Unlike Balance, errors are returned to the caller.
func (c *Client) Quote(currency string) (float64, error) {
	body, err := utils.GetHTTP(c.baseURL + "/ticker")
	if err != nil {
		return 0, err
	}

	ticker := map[string]data.TickerEntry{}
	err = json.Unmarshal(body, &ticker)
	if err != nil {
		return 0, err
	}

	entry, ok := ticker[currency]
	if !ok {
		return 0, fmt.Errorf("currency %q not present in ticker", currency)
	}

	return entry.Rate15m, nil
}
