package data

// BalanceResult - the outcome of a single address balance lookup. A lookup
// either yields a confirmed BTC amount or collapses to Failed, with no
// further detail retained.
type BalanceResult struct {
	BTC    float64
	Failed bool
}
