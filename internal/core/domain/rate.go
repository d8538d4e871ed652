package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Vehicle types with an active rate row. The set is open: new categories are
// added through the rates admin, not a code change.
const (
	VehicleStandard = "STANDARD"
	VehiclePremium  = "PREMIUM"
	VehicleVan      = "VAN"
	VehicleElectric = "ELECTRIC"
)

// VehicleRate holds the pricing parameters for one vehicle category.
// Exactly one rate row exists per vehicle type; all amounts are in euros.
type VehicleRate struct {
	RateID      string          `json:"rateID"`
	VehicleType string          `json:"vehicleType"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	PricePerKm  decimal.Decimal `json:"pricePerKm"`
	MinPrice    decimal.Decimal `json:"minPrice"` // price floor, higher for premium tiers
	AuditFields
}

// Validate checks the monetary invariants of a rate row.
func (r VehicleRate) Validate() error {
	if r.VehicleType == "" {
		return fmt.Errorf("vehicle type is required")
	}
	if r.BasePrice.IsNegative() {
		return fmt.Errorf("base price must not be negative")
	}
	if r.PricePerKm.IsNegative() {
		return fmt.Errorf("price per km must not be negative")
	}
	if r.MinPrice.IsNegative() {
		return fmt.Errorf("minimum price must not be negative")
	}
	return nil
}
