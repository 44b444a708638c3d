package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_fx_service/internal/apperrors"
	"github.com/SscSPs/erp_fx_service/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_fx_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_fx_service/internal/core/ports/services"
	"github.com/SscSPs/erp_fx_service/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// rateResolver implements portssvc.RateResolverSvc over the rate store.
type rateResolver struct {
	BaseService
	rateRepo portsrepo.ExchangeRateReader
	metrics  *metrics.ConversionMetrics
	now      func() time.Time
}

// ResolverOption configures a rate resolver.
type ResolverOption func(*rateResolver)

// WithResolverClock overrides the clock used when no as-of instant is given.
func WithResolverClock(now func() time.Time) ResolverOption {
	return func(r *rateResolver) {
		r.now = now
	}
}

// WithResolverMetrics records resolution timings.
func WithResolverMetrics(m *metrics.ConversionMetrics) ResolverOption {
	return func(r *rateResolver) {
		r.metrics = m
	}
}

// NewRateResolver creates a resolver reading from rateRepo.
func NewRateResolver(rateRepo portsrepo.ExchangeRateReader, options ...ResolverOption) portssvc.RateResolverSvc {
	r := &rateResolver{
		rateRepo: rateRepo,
		now:      time.Now,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

var _ portssvc.RateResolverSvc = (*rateResolver)(nil)

// ResolveRate tries the direct pair, then the inverse pair, at asOf.
func (r *rateResolver) ResolveRate(ctx context.Context, fromCode, toCode string, asOf *time.Time) (*domain.RateResolution, error) {
	from, err := domain.NormalizeCurrencyCode(fromCode)
	if err != nil {
		return nil, err
	}
	to, err := domain.NormalizeCurrencyCode(toCode)
	if err != nil {
		return nil, err
	}
	at := asOfOrNow(asOf, r.now)
	started := time.Now()

	if from == to {
		return &domain.RateResolution{
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			AsOf:             at,
			Rate:             decimal.NewFromInt(1),
			Provenance:       domain.ProvenanceSameCurrency,
		}, nil
	}

	direct, directInvalid, err := r.findEffectiveRate(ctx, from, to, at)
	if err != nil {
		r.metrics.ObserveResolution("store_unavailable", started)
		return nil, fmt.Errorf("%w: direct lookup %s to %s: %w", apperrors.ErrStoreUnavailable, from, to, err)
	}
	if direct != nil {
		r.metrics.ObserveResolution("direct", started)
		r.LogDebug(ctx, "Resolved direct exchange rate",
			slog.String("from", from), slog.String("to", to), slog.String("rate_id", direct.ExchangeRateID))
		return &domain.RateResolution{
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			AsOf:             at,
			Rate:             direct.Rate,
			Provenance:       domain.ProvenanceDirect,
			ExchangeRateID:   direct.ExchangeRateID,
			Source:           direct.Source,
		}, nil
	}

	inverse, inverseInvalid, err := r.findEffectiveRate(ctx, to, from, at)
	if err != nil {
		r.metrics.ObserveResolution("store_unavailable", started)
		return nil, fmt.Errorf("%w: inverse lookup %s to %s: %w", apperrors.ErrStoreUnavailable, to, from, err)
	}
	if inverse != nil {
		// findEffectiveRate only returns positive rates, so inversion cannot fail here.
		inverted, _ := domain.InvertRate(inverse.Rate)
		r.metrics.ObserveResolution("inverse", started)
		r.LogDebug(ctx, "Resolved inverse exchange rate",
			slog.String("from", from), slog.String("to", to), slog.String("rate_id", inverse.ExchangeRateID))
		return &domain.RateResolution{
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			AsOf:             at,
			Rate:             inverted,
			Provenance:       domain.ProvenanceInverse,
			ExchangeRateID:   inverse.ExchangeRateID,
			Source:           inverse.Source,
		}, nil
	}

	r.metrics.ObserveResolution("unresolved", started)
	return nil, apperrors.NewUnresolvedRateError(from, to, errors.Join(
		unresolvedReason(directInvalid, apperrors.ErrNoDirectRate),
		unresolvedReason(inverseInvalid, apperrors.ErrNoInverseRate),
	))
}

// findEffectiveRate returns the most recently effective usable row for the ordered pair.
// sawInvalid reports whether an otherwise applicable row was skipped for a non-positive rate.
func (r *rateResolver) findEffectiveRate(ctx context.Context, from, to string, at time.Time) (*domain.ExchangeRate, bool, error) {
	candidates, err := r.rateRepo.FindRates(ctx, from, to, at)
	if err != nil {
		return nil, false, err
	}
	best, sawInvalid := selectEffectiveRate(candidates, at)
	if sawInvalid {
		r.LogWarn(ctx, "Skipped exchange rate rows with non-positive rate",
			slog.String("from", from), slog.String("to", to), slog.Time("as_of", at))
	}
	return best, sawInvalid, nil
}

// selectEffectiveRate picks the candidate with the latest EffectiveFrom among rows effective at
// asOf with a positive rate. Equal EffectiveFrom values keep the earlier candidate in store order.
func selectEffectiveRate(candidates []domain.ExchangeRate, asOf time.Time) (*domain.ExchangeRate, bool) {
	var best *domain.ExchangeRate
	sawInvalid := false
	for i := range candidates {
		candidate := &candidates[i]
		if !candidate.IsEffectiveAt(asOf) {
			continue
		}
		if !candidate.HasValidRate() {
			sawInvalid = true
			continue
		}
		if best == nil || candidate.EffectiveFrom.After(best.EffectiveFrom) {
			best = candidate
		}
	}
	return best, sawInvalid
}

func unresolvedReason(sawInvalid bool, missing error) error {
	if sawInvalid {
		return fmt.Errorf("%w (%w)", missing, apperrors.ErrInvalidStoredRate)
	}
	return missing
}
