package money

import (
	"fmt"

	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// Format - converts a BTC amount at the given fiat-per-BTC rate into a
// localized display string. The amount is rounded to 2 decimal places before
// formatting. The pattern follows the accounting library's conventions:
// %s is the currency symbol, %v the formatted value.
func Format(amount, rate float64, currencyCode, pattern string) (string, error) {
	locale, ok := accounting.LocaleInfo[currencyCode]
	if !ok {
		return "", fmt.Errorf("unknown currency code %q", currencyCode)
	}

	value := decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).Round(2)

	ac := accounting.Accounting{
		Symbol:    locale.ComSymbol,
		Precision: locale.FractionLength,
		Thousand:  locale.ThouSep,
		Decimal:   locale.DecSep,
		Format:    pattern,
	}

	return ac.FormatMoneyDecimal(value), nil
}
