package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_fx_service/internal/apperrors"
	"github.com/SscSPs/erp_fx_service/internal/core/domain"
	portssvc "github.com/SscSPs/erp_fx_service/internal/core/ports/services"
	"github.com/SscSPs/erp_fx_service/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// conversionService implements portssvc.ConversionSvc.
type conversionService struct {
	BaseService
	resolver portssvc.RateResolverSvc
	metrics  *metrics.ConversionMetrics
	now      func() time.Time
}

// ConversionOption configures a conversion service.
type ConversionOption func(*conversionService)

// WithConversionClock overrides the clock used when no as-of instant is given.
func WithConversionClock(now func() time.Time) ConversionOption {
	return func(s *conversionService) {
		s.now = now
	}
}

// WithConversionMetrics records conversion and fallback counts.
func WithConversionMetrics(m *metrics.ConversionMetrics) ConversionOption {
	return func(s *conversionService) {
		s.metrics = m
	}
}

// NewConversionService creates a converter backed by resolver.
func NewConversionService(resolver portssvc.RateResolverSvc, options ...ConversionOption) portssvc.ConversionSvc {
	return newConversionService(resolver, options...)
}

func newConversionService(resolver portssvc.RateResolverSvc, options ...ConversionOption) *conversionService {
	s := &conversionService{
		resolver: resolver,
		now:      time.Now,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

var _ portssvc.ConversionSvc = (*conversionService)(nil)

// Convert converts amount from one currency to another. Lack of a rate is not an error: the
// amount comes back unchanged with FALLBACK provenance.
func (s *conversionService) Convert(ctx context.Context, fromCode, toCode string, amount decimal.Decimal, asOf *time.Time) (domain.ConversionResult, error) {
	from, err := domain.NormalizeCurrencyCode(fromCode)
	if err != nil {
		return domain.ConversionResult{}, err
	}
	to, err := domain.NormalizeCurrencyCode(toCode)
	if err != nil {
		return domain.ConversionResult{}, err
	}
	at := asOfOrNow(asOf, s.now)

	if from == to {
		s.metrics.ObserveConversion(string(domain.ProvenanceSameCurrency))
		return domain.SameCurrencyResult(from, amount, at), nil
	}

	resolution, err := s.resolver.ResolveRate(ctx, from, to, &at)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return domain.ConversionResult{}, err
		}
		reason := fallbackReason(err)
		s.LogWarn(ctx, "Exchange rate unavailable, returning amount unconverted",
			slog.String("from", from),
			slog.String("to", to),
			slog.Time("as_of", at),
			slog.String("reason", reason),
			slog.String("error", err.Error()))
		s.metrics.ObserveFallback(reason)
		s.metrics.ObserveConversion(string(domain.ProvenanceFallback))
		return domain.FallbackResult(from, to, amount, at), nil
	}

	s.metrics.ObserveConversion(string(resolution.Provenance))
	return domain.ApplyRate(*resolution, amount), nil
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		return "store_unavailable"
	case errors.Is(err, apperrors.ErrInvalidStoredRate):
		return "invalid_stored_rate"
	case errors.Is(err, apperrors.ErrRateUnresolved):
		return "no_rate"
	default:
		return "unknown"
	}
}
