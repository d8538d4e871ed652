package services

import (
	"context"

	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
)

// RateStoreSvcFacade is the in-memory snapshot cache of vehicle and option
// rates. Reads serve the current snapshot without I/O; Initialize and
// Refresh are the only operations that touch the backend.
type RateStoreSvcFacade interface {
	// Initialize performs the first full fetch. Idempotent: calling it on an
	// initialized store is a no-op. On failure the store stays uninitialized.
	Initialize(ctx context.Context) error

	// GetRate returns the rate for a vehicle type from the current snapshot.
	GetRate(vehicleType string) (domain.VehicleRate, error)

	// AllRates returns the full vehicle rate snapshot.
	AllRates() ([]domain.VehicleRate, error)

	// AllOptionRates returns the full option rate snapshot.
	AllOptionRates() ([]domain.OptionRate, error)

	// Refresh re-fetches everything and atomically replaces the snapshot.
	// On failure the previous snapshot stays in place.
	Refresh(ctx context.Context) error

	// Start subscribes to the rate change feed; any event triggers a refresh.
	Start(ctx context.Context) error

	// Stop tears down the feed subscription.
	Stop()
}

// PricingSvcFacade computes trip prices against the rate store snapshot.
type PricingSvcFacade interface {
	CalculatePrice(ctx context.Context, input domain.QuoteInput) (*domain.PriceBreakdown, error)
}
