package dto

import (
	"time"

	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	"github.com/chauffeurpro/vtc_booking_app/internal/utils"
	"github.com/shopspring/decimal"
)

// QuoteRequest carries the trip parameters for a price estimate. Distance is
// in kilometers, already converted by the client from the routing result.
type QuoteRequest struct {
	DistanceKm     float64   `json:"distanceKm" binding:"min=0"`
	VehicleType    string    `json:"vehicleType" binding:"required,uppercase"`
	Options        []string  `json:"options"`
	PickupTime     time.Time `json:"pickupTime" binding:"required"`
	PickupAddress  string    `json:"pickupAddress" binding:"required"`
	DropoffAddress string    `json:"dropoffAddress" binding:"required"`
}

// ToQuoteInput converts the request into the domain calculation input.
func (r QuoteRequest) ToQuoteInput() domain.QuoteInput {
	return domain.QuoteInput{
		DistanceKm:     r.DistanceKm,
		VehicleType:    r.VehicleType,
		Options:        r.Options,
		PickupTime:     r.PickupTime,
		PickupAddress:  r.PickupAddress,
		DropoffAddress: r.DropoffAddress,
	}
}

// QuoteResponse is the API shape of a price breakdown. Amounts stay unrounded
// decimals; DisplayTotal is the 2-decimal rendering for the booking UI.
type QuoteResponse struct {
	Base         decimal.Decimal      `json:"base"`
	Distance     decimal.Decimal      `json:"distance"`
	Options      decimal.Decimal      `json:"options"`
	Total        decimal.Decimal      `json:"total"`
	DisplayTotal string               `json:"displayTotal"`
	Zone         domain.Zone          `json:"zone"`
	Period       domain.PricingPeriod `json:"period"`
	Currency     string               `json:"currency"`
	Fallback     bool                 `json:"fallback"`
}

// ToQuoteResponse converts a domain.PriceBreakdown to the API DTO.
func ToQuoteResponse(b *domain.PriceBreakdown) QuoteResponse {
	return QuoteResponse{
		Base:         b.Base,
		Distance:     b.Distance,
		Options:      b.Options,
		Total:        b.Total,
		DisplayTotal: utils.FormatEuros(b.Total),
		Zone:         b.Zone,
		Period:       b.Period,
		Currency:     b.Currency,
		Fallback:     b.Fallback,
	}
}
