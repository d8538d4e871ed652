package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OptionRate holds the flat surcharge for one bookable add-on
// (child seat, pets, personalized welcome, refreshments, ...).
type OptionRate struct {
	OptionRateID string          `json:"optionRateID"`
	OptionType   string          `json:"optionType"`
	Price        decimal.Decimal `json:"price"`
	AuditFields
}

// Validate checks the invariants of an option rate row.
func (o OptionRate) Validate() error {
	if o.OptionType == "" {
		return fmt.Errorf("option type is required")
	}
	if o.Price.IsNegative() {
		return fmt.Errorf("option price must not be negative")
	}
	return nil
}
