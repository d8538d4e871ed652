package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Zone is the geographic pricing category derived from the trip addresses.
type Zone string

const (
	ZoneParis   Zone = "PARIS"
	ZoneSuburb  Zone = "SUBURB"
	ZoneAirport Zone = "AIRPORT"
)

// PricingPeriod is the time-based pricing category derived from the pickup time.
type PricingPeriod string

const (
	PeriodBase PricingPeriod = "BASE"
	PeriodPeak PricingPeriod = "PEAK"
	PeriodNight PricingPeriod = "NIGHT"
)

// QuoteInput carries the trip parameters for one price calculation.
// Distance is already in kilometers; conversion from route meters/seconds
// happens upstream at the client.
type QuoteInput struct {
	DistanceKm     float64
	VehicleType    string
	Options        []string
	PickupTime     time.Time
	PickupAddress  string
	DropoffAddress string
}

// PriceBreakdown is the ephemeral result of one calculation. It is never
// persisted as such; reservations snapshot the total as estimated_price.
// Amounts are unrounded euros; rounding to 2 decimals is a display concern.
type PriceBreakdown struct {
	Base     decimal.Decimal `json:"base"`
	Distance decimal.Decimal `json:"distance"`
	Options  decimal.Decimal `json:"options"`
	Total    decimal.Decimal `json:"total"`
	Zone     Zone            `json:"zone"`
	Period   PricingPeriod   `json:"period"`
	Currency string          `json:"currency"`
	// Fallback is true when the breakdown was computed from the configured
	// default rates because no rate row could serve the request.
	Fallback bool `json:"fallback"`
}
