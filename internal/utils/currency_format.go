package utils

import (
	"github.com/shopspring/decimal"
)

// FormatEuros renders a euro amount for display with 2 decimals.
// Internal pricing math stays unrounded; rounding happens only here,
// at the presentation edge.
func FormatEuros(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
