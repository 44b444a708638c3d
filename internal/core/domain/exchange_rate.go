package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultRateSource is recorded when an administrator does not name the quote's origin.
const DefaultRateSource = "manual"

// ExchangeRate is a stored quote for an ordered currency pair over a validity window.
// Amount in ToCurrencyCode = amount in FromCurrencyCode * Rate.
// Rows are never edited in place: corrections are new rows or a bounded EffectiveTo.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	Source           string          `json:"source"`
	EffectiveFrom    time.Time       `json:"effectiveFrom"`
	EffectiveTo      *time.Time      `json:"effectiveTo,omitempty"` // nil = open-ended
	IsActive         bool            `json:"isActive"`
	AuditFields
}

// IsEffectiveAt reports whether the row is active and its window (both ends inclusive) covers asOf.
func (r ExchangeRate) IsEffectiveAt(asOf time.Time) bool {
	if !r.IsActive {
		return false
	}
	if r.EffectiveFrom.After(asOf) {
		return false
	}
	return r.EffectiveTo == nil || !r.EffectiveTo.Before(asOf)
}

// HasValidRate reports whether the stored rate is usable (strictly positive).
func (r ExchangeRate) HasValidRate() bool {
	return r.Rate.IsPositive()
}
