package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Provenance records how a rate or converted amount was obtained.
type Provenance string

const (
	ProvenanceSameCurrency Provenance = "SAME_CURRENCY"
	ProvenanceDirect       Provenance = "DIRECT"
	ProvenanceInverse      Provenance = "INVERSE"
	// ProvenanceFallback marks an amount returned unconverted because no rate could be resolved.
	ProvenanceFallback Provenance = "FALLBACK"
)

const (
	// RatePrecision is the number of decimal places an inverted rate is rounded to.
	RatePrecision int32 = 4
	// AmountPrecision is the number of decimal places converted amounts are rounded to.
	AmountPrecision int32 = 2
)

// RateResolution is the single rate chosen for a pair at an instant.
type RateResolution struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	AsOf             time.Time       `json:"asOf"`
	Rate             decimal.Decimal `json:"rate"`
	Provenance       Provenance      `json:"provenance"`
	ExchangeRateID   string          `json:"exchangeRateID,omitempty"` // stored row the rate came from
	Source           string          `json:"source,omitempty"`
}

// ConversionResult is the outcome of converting one amount. It is never persisted.
type ConversionResult struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	InputAmount      decimal.Decimal `json:"inputAmount"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	RateUsed         decimal.Decimal `json:"rateUsed"`
	Provenance       Provenance      `json:"provenance"`
	AsOf             time.Time       `json:"asOf"`
}

// IsFallback reports whether the amount was left unconverted for lack of a rate.
func (r ConversionResult) IsFallback() bool {
	return r.Provenance == ProvenanceFallback
}

// SameCurrencyResult is the identity conversion.
func SameCurrencyResult(code string, amount decimal.Decimal, asOf time.Time) ConversionResult {
	return ConversionResult{
		FromCurrencyCode: code,
		ToCurrencyCode:   code,
		InputAmount:      amount,
		ConvertedAmount:  amount,
		RateUsed:         decimal.NewFromInt(1),
		Provenance:       ProvenanceSameCurrency,
		AsOf:             asOf,
	}
}

// FallbackResult returns amount unchanged with a rate of 1, tagged FALLBACK.
func FallbackResult(fromCode, toCode string, amount decimal.Decimal, asOf time.Time) ConversionResult {
	return ConversionResult{
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		InputAmount:      amount,
		ConvertedAmount:  amount,
		RateUsed:         decimal.NewFromInt(1),
		Provenance:       ProvenanceFallback,
		AsOf:             asOf,
	}
}

// ApplyRate converts amount with a resolved rate, rounding half-up to AmountPrecision.
func ApplyRate(resolution RateResolution, amount decimal.Decimal) ConversionResult {
	return ConversionResult{
		FromCurrencyCode: resolution.FromCurrencyCode,
		ToCurrencyCode:   resolution.ToCurrencyCode,
		InputAmount:      amount,
		ConvertedAmount:  amount.Mul(resolution.Rate).Round(AmountPrecision),
		RateUsed:         resolution.Rate,
		Provenance:       resolution.Provenance,
		AsOf:             resolution.AsOf,
	}
}

// InvertRate returns 1/rate rounded half-up to RatePrecision. ok is false for non-positive rates.
func InvertRate(rate decimal.Decimal) (inverse decimal.Decimal, ok bool) {
	if !rate.IsPositive() {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(1).DivRound(rate, RatePrecision), true
}
