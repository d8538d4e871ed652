package repositories

import (
	"context"

	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
)

// OptionRateReader defines read operations for option rate data.
type OptionRateReader interface {
	// FindOptionRateByType retrieves the rate row for an option type.
	FindOptionRateByType(ctx context.Context, optionType string) (*domain.OptionRate, error)

	// ListOptionRates retrieves all option rate rows.
	ListOptionRates(ctx context.Context) ([]domain.OptionRate, error)
}

// OptionRateWriter defines write operations for option rate data.
type OptionRateWriter interface {
	// SaveOptionRate persists a new option rate.
	SaveOptionRate(ctx context.Context, rate domain.OptionRate) error

	// UpdateOptionRate replaces the price of an existing option rate.
	UpdateOptionRate(ctx context.Context, rate domain.OptionRate) error

	// DeleteOptionRate removes the rate row for an option type.
	DeleteOptionRate(ctx context.Context, optionType string) error
}

// OptionRateRepositoryFacade combines all option rate repository interfaces.
type OptionRateRepositoryFacade interface {
	OptionRateReader
	OptionRateWriter
}
