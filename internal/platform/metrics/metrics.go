package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ConversionMetrics counts conversions by provenance and times rate resolution.
// A nil *ConversionMetrics is valid and records nothing.
type ConversionMetrics struct {
	ConversionsTotal     *prometheus.CounterVec
	FallbacksTotal       *prometheus.CounterVec
	ResolutionDuration   *prometheus.HistogramVec
	ProjectionLinesTotal *prometheus.CounterVec
}

// NewConversionMetrics registers the collectors on reg. A nil reg creates unregistered collectors.
func NewConversionMetrics(reg prometheus.Registerer) *ConversionMetrics {
	factory := promauto.With(reg)
	return &ConversionMetrics{
		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_conversions_total",
				Help: "Number of amount conversions by provenance",
			},
			[]string{"provenance"},
		),
		FallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_conversion_fallbacks_total",
				Help: "Conversions returned unconverted, by reason",
			},
			[]string{"reason"},
		),
		ResolutionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exchange_rate_resolution_duration_seconds",
				Help:    "Time spent resolving an exchange rate against the rate store",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		ProjectionLinesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "price_projection_items_total",
				Help: "Items re-denominated by the price projector, by document kind",
			},
			[]string{"kind"},
		),
	}
}

// ObserveConversion counts one conversion.
func (m *ConversionMetrics) ObserveConversion(provenance string) {
	if m == nil {
		return
	}
	m.ConversionsTotal.WithLabelValues(provenance).Inc()
}

// ObserveFallback counts one fallback with its reason.
func (m *ConversionMetrics) ObserveFallback(reason string) {
	if m == nil {
		return
	}
	m.FallbacksTotal.WithLabelValues(reason).Inc()
}

// ObserveResolution records how long a resolution took and how it ended.
func (m *ConversionMetrics) ObserveResolution(outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.ResolutionDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

// ObserveProjection counts items projected for a document kind.
func (m *ConversionMetrics) ObserveProjection(kind string, items int) {
	if m == nil {
		return
	}
	m.ProjectionLinesTotal.WithLabelValues(kind).Add(float64(items))
}
