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

// PgxOptionRateRepository implements the option rate repository ports using pgx.
type PgxOptionRateRepository struct {
	BaseRepository
}

var _ portsrepo.OptionRateRepositoryFacade = (*PgxOptionRateRepository)(nil)

func newPgxOptionRateRepository(pool *pgxpool.Pool) *PgxOptionRateRepository {
	return &PgxOptionRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

const optionRateColumns = `option_rate_id, option_type, price, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxOptionRateRepository) FindOptionRateByType(ctx context.Context, optionType string) (*domain.OptionRate, error) {
	query := fmt.Sprintf(`SELECT %s FROM option_rates WHERE option_type = $1;`, optionRateColumns)

	rows, err := r.Pool.Query(ctx, query, optionType)
	if err != nil {
		return nil, fmt.Errorf("failed to query option rate for %s: %w", optionType, err)
	}

	modelRate, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.OptionRate])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("option rate for %s %w", optionType, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to scan option rate for %s: %w", optionType, err)
	}

	domainRate := mapping.ToDomainOptionRate(modelRate)
	return &domainRate, nil
}

func (r *PgxOptionRateRepository) ListOptionRates(ctx context.Context) ([]domain.OptionRate, error) {
	query := fmt.Sprintf(`SELECT %s FROM option_rates ORDER BY option_type;`, optionRateColumns)

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query option rates: %w", err)
	}

	modelRates, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.OptionRate])
	if err != nil {
		return nil, fmt.Errorf("failed to scan option rates: %w", err)
	}

	return mapping.ToDomainOptionRateSlice(modelRates), nil
}

func (r *PgxOptionRateRepository) SaveOptionRate(ctx context.Context, rate domain.OptionRate) error {
	modelRate := mapping.ToModelOptionRate(rate)
	query := `
		INSERT INTO option_rates (option_rate_id, option_type, price, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`

	_, err := r.Pool.Exec(ctx, query,
		modelRate.OptionRateID,
		modelRate.OptionType,
		modelRate.Price,
		modelRate.CreatedAt,
		modelRate.CreatedBy,
		modelRate.LastUpdatedAt,
		modelRate.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("option rate for %s already exists: %w", rate.OptionType, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save option rate for %s: %w", rate.OptionType, err)
	}
	return nil
}

func (r *PgxOptionRateRepository) UpdateOptionRate(ctx context.Context, rate domain.OptionRate) error {
	modelRate := mapping.ToModelOptionRate(rate)
	query := `
		UPDATE option_rates
		SET price = $1, last_updated_at = $2, last_updated_by = $3
		WHERE option_type = $4;`

	tag, err := r.Pool.Exec(ctx, query,
		modelRate.Price,
		modelRate.LastUpdatedAt,
		modelRate.LastUpdatedBy,
		modelRate.OptionType,
	)
	if err != nil {
		return fmt.Errorf("failed to update option rate for %s: %w", rate.OptionType, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("option rate for %s %w", rate.OptionType, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxOptionRateRepository) DeleteOptionRate(ctx context.Context, optionType string) error {
	query := `DELETE FROM option_rates WHERE option_type = $1;`

	tag, err := r.Pool.Exec(ctx, query, optionType)
	if err != nil {
		return fmt.Errorf("failed to delete option rate for %s: %w", optionType, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("option rate for %s %w", optionType, apperrors.ErrNotFound)
	}
	return nil
}
