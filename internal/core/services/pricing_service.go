package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/chauffeurpro/vtc_booking_app/internal/apperrors"
	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	portssvc "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/services"
	"github.com/chauffeurpro/vtc_booking_app/internal/utils/tariff"
)

// FallbackRates is the configured emergency pricing used when the rate store
// cannot serve a request. Disabled means pricing errors surface to the caller.
type FallbackRates struct {
	Enabled    bool
	BasePrice  decimal.Decimal
	PricePerKm decimal.Decimal
	MinPrice   decimal.Decimal
}

// pricingService computes trip prices. The calculation itself is pure: all
// I/O happens through the rate store snapshot.
type pricingService struct {
	store    portssvc.RateStoreSvcFacade
	calendar tariff.HolidayCalendar
	fallback FallbackRates
	logger   *slog.Logger
}

var _ portssvc.PricingSvcFacade = (*pricingService)(nil)

// NewPricingService wires the calculator to the rate store.
func NewPricingService(store portssvc.RateStoreSvcFacade, calendar tariff.HolidayCalendar, fallback FallbackRates, logger *slog.Logger) portssvc.PricingSvcFacade {
	return &pricingService{
		store:    store,
		calendar: calendar,
		fallback: fallback,
		logger:   logger.With(slog.String("component", "pricing")),
	}
}

// CalculatePrice derives the price breakdown for one trip:
//
//	subtotal = (base + perKm * distance) * zoneMultiplier
//	total    = max(subtotal + options, minPrice)
//
// Unknown option types contribute zero rather than failing the quote.
func (s *pricingService) CalculatePrice(ctx context.Context, input domain.QuoteInput) (*domain.PriceBreakdown, error) {
	if input.DistanceKm < 0 {
		return nil, fmt.Errorf("%w: distance must not be negative", apperrors.ErrValidation)
	}
	if input.VehicleType == "" {
		return nil, fmt.Errorf("%w: vehicle type is required", apperrors.ErrValidation)
	}

	// A cold store initializes lazily on the first quote.
	if err := s.store.Initialize(ctx); err != nil && !s.fallback.Enabled {
		return nil, err
	}

	fallbackUsed := false
	rate, err := s.store.GetRate(input.VehicleType)
	if err != nil {
		if !s.fallback.Enabled {
			return nil, err
		}
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrNotInitialized) {
			return nil, err
		}
		s.logger.Warn("pricing with fallback rates",
			slog.String("vehicleType", input.VehicleType),
			slog.String("reason", err.Error()))
		rate = domain.VehicleRate{
			VehicleType: input.VehicleType,
			BasePrice:   s.fallback.BasePrice,
			PricePerKm:  s.fallback.PricePerKm,
			MinPrice:    s.fallback.MinPrice,
		}
		fallbackUsed = true
	}

	zone := tariff.DetermineZone(input.PickupAddress, input.DropoffAddress)
	period := tariff.DeterminePeriod(input.PickupTime, s.calendar)

	distanceCharge := rate.PricePerKm.Mul(decimal.NewFromFloat(input.DistanceKm))
	subtotal := rate.BasePrice.Add(distanceCharge).Mul(tariff.ZoneMultiplier(zone))

	optionsCharge := s.sumOptions(input.Options)
	total := subtotal.Add(optionsCharge)
	if total.LessThan(rate.MinPrice) {
		total = rate.MinPrice
	}

	return &domain.PriceBreakdown{
		Base:     rate.BasePrice,
		Distance: distanceCharge,
		Options:  optionsCharge,
		Total:    total,
		Zone:     zone,
		Period:   period,
		Currency: "EUR",
		Fallback: fallbackUsed,
	}, nil
}

// sumOptions totals the selected add-ons. Duplicate selections are counted
// once per occurrence; unknown types are skipped.
func (s *pricingService) sumOptions(options []string) decimal.Decimal {
	total := decimal.Zero
	if len(options) == 0 {
		return total
	}

	optionRates, err := s.store.AllOptionRates()
	if err != nil {
		// Option surcharges have no configured fallback; they drop to zero.
		return total
	}

	priced := make(map[string]decimal.Decimal, len(optionRates))
	for _, o := range optionRates {
		priced[o.OptionType] = o.Price
	}
	for _, opt := range options {
		if price, ok := priced[opt]; ok {
			total = total.Add(price)
		}
	}
	return total
}
