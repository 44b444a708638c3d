package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/erp_fx_service/internal/apperrors"
	"github.com/SscSPs/erp_fx_service/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_fx_service/internal/core/ports/repositories"
	"github.com/SscSPs/erp_fx_service/internal/models"
	"github.com/SscSPs/erp_fx_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const exchangeRateColumns = `exchange_rate_id, from_currency_code, to_currency_code, rate, source,
	effective_from, effective_to, is_active, created_at, created_by, last_updated_at, last_updated_by`

// exchangeRateOrder is the store order the resolver relies on for tie-breaking.
const exchangeRateOrder = ` ORDER BY effective_from DESC, created_at DESC, exchange_rate_id DESC`

// PgxExchangeRateRepository implements the exchange rate repository using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(db *pgxpool.Pool) portsrepo.ExchangeRateRepositoryWithTx {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryWithTx = (*PgxExchangeRateRepository)(nil)

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var rate models.ExchangeRate
	err := row.Scan(
		&rate.ExchangeRateID, &rate.FromCurrencyCode, &rate.ToCurrencyCode,
		&rate.Rate, &rate.Source, &rate.EffectiveFrom, &rate.EffectiveTo, &rate.IsActive,
		&rate.CreatedAt, &rate.CreatedBy, &rate.LastUpdatedAt, &rate.LastUpdatedBy,
	)
	return rate, err
}

func collectExchangeRates(rows pgx.Rows) ([]domain.ExchangeRate, error) {
	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		return scanExchangeRate(row)
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}

// SaveExchangeRate inserts a new rate row.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	modelRate := mapping.ToModelExchangeRate(rate)

	query := `
		INSERT INTO exchange_rates (` + exchangeRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelRate.ExchangeRateID, modelRate.FromCurrencyCode, modelRate.ToCurrencyCode,
		modelRate.Rate, modelRate.Source, modelRate.EffectiveFrom, modelRate.EffectiveTo, modelRate.IsActive,
		modelRate.CreatedAt, modelRate.CreatedBy, modelRate.LastUpdatedAt, modelRate.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: exchange rate %s to %s effective %s", apperrors.ErrDuplicate,
				modelRate.FromCurrencyCode, modelRate.ToCurrencyCode, modelRate.EffectiveFrom.Format(time.RFC3339))
		}
		return apperrors.NewAppError(500, "failed to save exchange rate", err)
	}
	return nil
}

// FindRates returns the active rows for the ordered pair whose window covers asOf.
func (r *PgxExchangeRateRepository) FindRates(ctx context.Context, fromCurrencyCode, toCurrencyCode string, asOf time.Time) ([]domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2
			AND is_active
			AND effective_from <= $3
			AND (effective_to IS NULL OR effective_to >= $3)` + exchangeRateOrder + `;`

	rows, err := r.Pool.Query(ctx, query, fromCurrencyCode, toCurrencyCode, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates %s to %s: %w", fromCurrencyCode, toCurrencyCode, err)
	}
	defer rows.Close()

	rates, err := collectExchangeRates(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rates %s to %s: %w", fromCurrencyCode, toCurrencyCode, err)
	}
	return rates, nil
}

// FindExchangeRateByID retrieves an exchange rate by its ID.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates WHERE exchange_rate_id = $1;`

	modelRate, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, rateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("exchange rate with ID " + rateID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get exchange rate by ID", err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// ListExchangeRates lists rows in store order, starting after the keyset cursor if one is set.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, filter portsrepo.ExchangeRateFilter) ([]domain.ExchangeRate, error) {
	query, args := buildExchangeRateListQuery(filter)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	defer rows.Close()

	rates, err := collectExchangeRates(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan exchange rates", err)
	}
	return rates, nil
}

func buildExchangeRateListQuery(filter portsrepo.ExchangeRateFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + exchangeRateColumns + ` FROM exchange_rates WHERE 1=1`)
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.FromCurrencyCode != nil {
		sb.WriteString(" AND from_currency_code = " + arg(*filter.FromCurrencyCode))
	}
	if filter.ToCurrencyCode != nil {
		sb.WriteString(" AND to_currency_code = " + arg(*filter.ToCurrencyCode))
	}
	if filter.IsActive != nil {
		sb.WriteString(" AND is_active = " + arg(*filter.IsActive))
	}
	if filter.EffectiveAt != nil {
		p := arg(*filter.EffectiveAt)
		sb.WriteString(" AND effective_from <= " + p + " AND (effective_to IS NULL OR effective_to >= " + p + ")")
	}
	if filter.AfterEffectiveFrom != nil && filter.AfterCreatedAt != nil && filter.AfterExchangeRateID != nil {
		sb.WriteString(" AND (effective_from, created_at, exchange_rate_id) < (" +
			arg(*filter.AfterEffectiveFrom) + ", " + arg(*filter.AfterCreatedAt) + ", " + arg(*filter.AfterExchangeRateID) + ")")
	}

	sb.WriteString(exchangeRateOrder)
	if filter.Limit > 0 {
		sb.WriteString(" LIMIT " + arg(filter.Limit))
	}
	return sb.String(), args
}

// CloseExchangeRate sets effective_to on a row, locking it so concurrent closes cannot lengthen the window.
func (r *PgxExchangeRateRepository) CloseExchangeRate(ctx context.Context, rateID string, effectiveTo time.Time, userID string) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	var effectiveFrom time.Time
	var currentEnd *time.Time
	err = tx.QueryRow(ctx,
		`SELECT effective_from, effective_to FROM exchange_rates WHERE exchange_rate_id = $1 FOR UPDATE;`,
		rateID,
	).Scan(&effectiveFrom, &currentEnd)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("exchange rate with ID " + rateID + " not found")
		}
		return apperrors.NewAppError(500, "failed to lock exchange rate", err)
	}
	if effectiveTo.Before(effectiveFrom) || (currentEnd != nil && effectiveTo.After(*currentEnd)) {
		return apperrors.NewValidationError("effectiveTo must fall within the existing validity window")
	}

	_, err = tx.Exec(ctx, `
		UPDATE exchange_rates
		SET effective_to = $2, last_updated_at = NOW(), last_updated_by = $3
		WHERE exchange_rate_id = $1;`,
		rateID, effectiveTo, userID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close exchange rate", err)
	}
	return r.Commit(ctx, tx)
}

// DeactivateExchangeRate logically retires a row.
func (r *PgxExchangeRateRepository) DeactivateExchangeRate(ctx context.Context, rateID string, userID string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE exchange_rates
		SET is_active = FALSE, last_updated_at = NOW(), last_updated_by = $2
		WHERE exchange_rate_id = $1;`,
		rateID, userID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate exchange rate", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("exchange rate with ID " + rateID + " not found")
	}
	return nil
}
