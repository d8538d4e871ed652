package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the pgx-backed repository set from one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		VehicleRateRepo: newPgxVehicleRateRepository(pool),
		OptionRateRepo:  newPgxOptionRateRepository(pool),
		ReservationRepo: newPgxReservationRepository(pool),
		UserRepo:        newPgxUserRepository(pool),
	}
}
