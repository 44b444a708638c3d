package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_fx_service/internal/core/domain"
)

// ExchangeRateFilter narrows a rate listing. Nil fields are not filtered on.
type ExchangeRateFilter struct {
	FromCurrencyCode *string
	ToCurrencyCode   *string
	IsActive         *bool
	EffectiveAt      *time.Time
	Limit            int
	// Keyset cursor: rows strictly after (AfterEffectiveFrom, AfterCreatedAt, AfterExchangeRateID)
	// in listing order. All three must be set for the cursor to apply.
	AfterEffectiveFrom  *time.Time
	AfterCreatedAt      *time.Time
	AfterExchangeRateID *string
}

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindRates returns the active rows for the ordered pair whose validity window covers asOf,
	// most recently effective first.
	FindRates(ctx context.Context, fromCurrencyCode, toCurrencyCode string, asOf time.Time) ([]domain.ExchangeRate, error)

	// FindExchangeRateByID retrieves a single rate row.
	FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)

	// ListExchangeRates lists rate rows ordered by effective_from desc, created_at desc.
	ListExchangeRates(ctx context.Context, filter ExchangeRateFilter) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate inserts a new rate row. Rows are never updated in place.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error

	// CloseExchangeRate bounds the validity window of a row.
	CloseExchangeRate(ctx context.Context, rateID string, effectiveTo time.Time, userID string) error

	// DeactivateExchangeRate logically retires a row.
	DeactivateExchangeRate(ctx context.Context, rateID string, userID string) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

// ExchangeRateRepositoryWithTx extends ExchangeRateRepositoryFacade with transaction capabilities
type ExchangeRateRepositoryWithTx interface {
	ExchangeRateRepositoryFacade
	TransactionManager
}
