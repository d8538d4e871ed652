package repositories

import (
	"context"
	"time"

	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
)

// ListReservationsParams carries keyset pagination inputs for reservation
// listings. AfterPickupTime/AfterCreatedAt come from a decoded page token;
// both zero means first page.
type ListReservationsParams struct {
	Limit           int
	AfterPickupTime time.Time
	AfterCreatedAt  time.Time
}

// ReservationReader defines read operations for reservation data.
type ReservationReader interface {
	// FindReservationByID retrieves a reservation by its ID.
	FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error)

	// ListReservationsByUser retrieves a page of one user's reservations,
	// ordered by (pickup_time, created_at) descending.
	ListReservationsByUser(ctx context.Context, userID string, params ListReservationsParams) ([]domain.Reservation, error)

	// ListReservations retrieves a page across all users (backoffice view).
	ListReservations(ctx context.Context, params ListReservationsParams) ([]domain.Reservation, error)
}

// ReservationWriter defines write operations for reservation data.
type ReservationWriter interface {
	// SaveReservation persists a new reservation.
	SaveReservation(ctx context.Context, reservation domain.Reservation) error

	// UpdateReservation replaces the mutable fields of an existing reservation
	// (status, driver, final price, audit).
	UpdateReservation(ctx context.Context, reservation domain.Reservation) error
}

// ReservationRepositoryFacade combines all reservation repository interfaces.
type ReservationRepositoryFacade interface {
	ReservationReader
	ReservationWriter
}

// ReservationRepositoryWithTx extends the facade with transaction capabilities.
type ReservationRepositoryWithTx interface {
	ReservationRepositoryFacade
	TransactionManager
}
