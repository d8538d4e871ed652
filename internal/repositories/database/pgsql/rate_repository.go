package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chauffeurpro/vtc_booking_app/internal/apperrors"
	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	portsrepo "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/repositories"
	"github.com/chauffeurpro/vtc_booking_app/internal/models"
	"github.com/chauffeurpro/vtc_booking_app/internal/utils/mapping"
)

// PgxVehicleRateRepository implements the vehicle rate repository ports using pgx.
type PgxVehicleRateRepository struct {
	BaseRepository
}

var _ portsrepo.VehicleRateRepositoryWithTx = (*PgxVehicleRateRepository)(nil)

func newPgxVehicleRateRepository(pool *pgxpool.Pool) *PgxVehicleRateRepository {
	return &PgxVehicleRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

const vehicleRateColumns = `rate_id, vehicle_type, base_price, price_per_km, min_price, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxVehicleRateRepository) FindVehicleRateByType(ctx context.Context, vehicleType string) (*domain.VehicleRate, error) {
	query := fmt.Sprintf(`SELECT %s FROM rates WHERE vehicle_type = $1;`, vehicleRateColumns)

	rows, err := r.Pool.Query(ctx, query, vehicleType)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate for %s: %w", vehicleType, err)
	}

	modelRate, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.VehicleRate])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("rate for vehicle type %s %w", vehicleType, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to scan rate for %s: %w", vehicleType, err)
	}

	domainRate := mapping.ToDomainVehicleRate(modelRate)
	return &domainRate, nil
}

func (r *PgxVehicleRateRepository) ListVehicleRates(ctx context.Context) ([]domain.VehicleRate, error) {
	query := fmt.Sprintf(`SELECT %s FROM rates ORDER BY vehicle_type;`, vehicleRateColumns)

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates: %w", err)
	}

	modelRates, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.VehicleRate])
	if err != nil {
		return nil, fmt.Errorf("failed to scan rates: %w", err)
	}

	return mapping.ToDomainVehicleRateSlice(modelRates), nil
}

func (r *PgxVehicleRateRepository) SaveVehicleRate(ctx context.Context, rate domain.VehicleRate) error {
	modelRate := mapping.ToModelVehicleRate(rate)
	query := `
		INSERT INTO rates (rate_id, vehicle_type, base_price, price_per_km, min_price, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	_, err := r.Pool.Exec(ctx, query,
		modelRate.RateID,
		modelRate.VehicleType,
		modelRate.BasePrice,
		modelRate.PricePerKm,
		modelRate.MinPrice,
		modelRate.CreatedAt,
		modelRate.CreatedBy,
		modelRate.LastUpdatedAt,
		modelRate.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("rate for vehicle type %s already exists: %w", rate.VehicleType, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save rate for %s: %w", rate.VehicleType, err)
	}
	return nil
}

func (r *PgxVehicleRateRepository) UpdateVehicleRate(ctx context.Context, rate domain.VehicleRate) error {
	modelRate := mapping.ToModelVehicleRate(rate)
	query := `
		UPDATE rates
		SET base_price = $1, price_per_km = $2, min_price = $3, last_updated_at = $4, last_updated_by = $5
		WHERE vehicle_type = $6;`

	tag, err := r.Pool.Exec(ctx, query,
		modelRate.BasePrice,
		modelRate.PricePerKm,
		modelRate.MinPrice,
		modelRate.LastUpdatedAt,
		modelRate.LastUpdatedBy,
		modelRate.VehicleType,
	)
	if err != nil {
		return fmt.Errorf("failed to update rate for %s: %w", rate.VehicleType, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("rate for vehicle type %s %w", rate.VehicleType, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxVehicleRateRepository) DeleteVehicleRate(ctx context.Context, vehicleType string) error {
	query := `DELETE FROM rates WHERE vehicle_type = $1;`

	tag, err := r.Pool.Exec(ctx, query, vehicleType)
	if err != nil {
		return fmt.Errorf("failed to delete rate for %s: %w", vehicleType, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("rate for vehicle type %s %w", vehicleType, apperrors.ErrNotFound)
	}
	return nil
}
