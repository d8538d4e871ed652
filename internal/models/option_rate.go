package models

import (
	"github.com/shopspring/decimal"
)

// OptionRate is a row of the option_rates table: flat price per bookable add-on.
type OptionRate struct {
	OptionRateID string          `json:"optionRateID" db:"option_rate_id"`
	OptionType   string          `json:"optionType" db:"option_type"` // unique key
	Price        decimal.Decimal `json:"price" db:"price"`
	AuditFields
}
