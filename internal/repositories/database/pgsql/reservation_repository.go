package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chauffeurpro/vtc_booking_app/internal/apperrors"
	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	portsrepo "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/repositories"
	"github.com/chauffeurpro/vtc_booking_app/internal/models"
	"github.com/chauffeurpro/vtc_booking_app/internal/utils/mapping"
)

// PgxReservationRepository implements the reservation repository ports using pgx.
type PgxReservationRepository struct {
	BaseRepository
}

var _ portsrepo.ReservationRepositoryWithTx = (*PgxReservationRepository)(nil)

func newPgxReservationRepository(pool *pgxpool.Pool) *PgxReservationRepository {
	return &PgxReservationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

const reservationColumns = `reservation_id, user_id, driver_id, vehicle_type, options, pickup_time, pickup_address, dropoff_address, distance_km, status, estimated_price, final_price, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	query := fmt.Sprintf(`SELECT %s FROM reservations WHERE reservation_id = $1;`, reservationColumns)

	rows, err := r.Pool.Query(ctx, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservation %s: %w", reservationID, err)
	}

	modelReservation, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Reservation])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("reservation %s %w", reservationID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to scan reservation %s: %w", reservationID, err)
	}

	domainReservation := mapping.ToDomainReservation(modelReservation)
	return &domainReservation, nil
}

func (r *PgxReservationRepository) ListReservationsByUser(ctx context.Context, userID string, params portsrepo.ListReservationsParams) ([]domain.Reservation, error) {
	args := []any{userID}
	query := fmt.Sprintf(`SELECT %s FROM reservations WHERE user_id = $1`, reservationColumns)

	if !params.AfterPickupTime.IsZero() {
		query += ` AND (pickup_time, created_at) < ($2, $3)`
		args = append(args, params.AfterPickupTime, params.AfterCreatedAt)
	}
	query += fmt.Sprintf(` ORDER BY pickup_time DESC, created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, params.Limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations for user %s: %w", userID, err)
	}

	modelReservations, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Reservation])
	if err != nil {
		return nil, fmt.Errorf("failed to scan reservations for user %s: %w", userID, err)
	}

	return mapping.ToDomainReservationSlice(modelReservations), nil
}

func (r *PgxReservationRepository) ListReservations(ctx context.Context, params portsrepo.ListReservationsParams) ([]domain.Reservation, error) {
	var args []any
	query := fmt.Sprintf(`SELECT %s FROM reservations`, reservationColumns)

	if !params.AfterPickupTime.IsZero() {
		query += ` WHERE (pickup_time, created_at) < ($1, $2)`
		args = append(args, params.AfterPickupTime, params.AfterCreatedAt)
	}
	query += fmt.Sprintf(` ORDER BY pickup_time DESC, created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, params.Limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}

	modelReservations, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Reservation])
	if err != nil {
		return nil, fmt.Errorf("failed to scan reservations: %w", err)
	}

	return mapping.ToDomainReservationSlice(modelReservations), nil
}

func (r *PgxReservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	m := mapping.ToModelReservation(reservation)
	query := `
		INSERT INTO reservations (reservation_id, user_id, driver_id, vehicle_type, options, pickup_time, pickup_address, dropoff_address, distance_km, status, estimated_price, final_price, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`

	_, err := r.Pool.Exec(ctx, query,
		m.ReservationID,
		m.UserID,
		m.DriverID,
		m.VehicleType,
		m.Options,
		m.PickupTime,
		m.PickupAddress,
		m.DropoffAddress,
		m.DistanceKm,
		m.Status,
		m.EstimatedPrice,
		m.FinalPrice,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save reservation %s: %w", reservation.ReservationID, err)
	}
	return nil
}

func (r *PgxReservationRepository) UpdateReservation(ctx context.Context, reservation domain.Reservation) error {
	m := mapping.ToModelReservation(reservation)
	query := `
		UPDATE reservations
		SET driver_id = $1, status = $2, final_price = $3, last_updated_at = $4, last_updated_by = $5
		WHERE reservation_id = $6;`

	tag, err := r.Pool.Exec(ctx, query,
		m.DriverID,
		m.Status,
		m.FinalPrice,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ReservationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update reservation %s: %w", reservation.ReservationID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s %w", reservation.ReservationID, apperrors.ErrNotFound)
	}
	return nil
}
