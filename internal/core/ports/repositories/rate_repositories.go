package repositories

import (
	"context"

	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
)

// VehicleRateReader defines read operations for vehicle rate data.
// The rate store consumes exactly this interface for its snapshot fetches.
type VehicleRateReader interface {
	// FindVehicleRateByType retrieves the rate row for a vehicle type.
	FindVehicleRateByType(ctx context.Context, vehicleType string) (*domain.VehicleRate, error)

	// ListVehicleRates retrieves all rate rows.
	ListVehicleRates(ctx context.Context) ([]domain.VehicleRate, error)
}

// VehicleRateWriter defines write operations for vehicle rate data.
type VehicleRateWriter interface {
	// SaveVehicleRate persists a new vehicle rate.
	SaveVehicleRate(ctx context.Context, rate domain.VehicleRate) error

	// UpdateVehicleRate replaces the pricing fields of an existing rate.
	UpdateVehicleRate(ctx context.Context, rate domain.VehicleRate) error

	// DeleteVehicleRate removes the rate row for a vehicle type.
	DeleteVehicleRate(ctx context.Context, vehicleType string) error
}

// VehicleRateRepositoryFacade combines all vehicle rate repository interfaces.
type VehicleRateRepositoryFacade interface {
	VehicleRateReader
	VehicleRateWriter
}

// VehicleRateRepositoryWithTx extends the facade with transaction capabilities.
type VehicleRateRepositoryWithTx interface {
	VehicleRateRepositoryFacade
	TransactionManager
}
