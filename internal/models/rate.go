package models

import (
	"github.com/shopspring/decimal"
)

// VehicleRate is a row of the rates table: one active rate per vehicle type.
type VehicleRate struct {
	RateID      string          `json:"rateID" db:"rate_id"`
	VehicleType string          `json:"vehicleType" db:"vehicle_type"` // unique key
	BasePrice   decimal.Decimal `json:"basePrice" db:"base_price"`
	PricePerKm  decimal.Decimal `json:"pricePerKm" db:"price_per_km"`
	MinPrice    decimal.Decimal `json:"minPrice" db:"min_price"`
	AuditFields
}
