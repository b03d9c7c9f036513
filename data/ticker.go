package data

// TickerEntry - one currency row of the block explorer's ticker response
type TickerEntry struct {
	Rate15m float64 `json:"15m"`
	Last    float64 `json:"last"`
	Buy     float64 `json:"buy"`
	Sell    float64 `json:"sell"`
	Symbol  string  `json:"symbol"`
}
