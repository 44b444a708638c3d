package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionMetrics_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewConversionMetrics(reg)

	m.ObserveConversion("DIRECT")
	m.ObserveConversion("DIRECT")
	m.ObserveConversion("FALLBACK")
	m.ObserveFallback("no_rate")
	m.ObserveResolution("direct", time.Now())
	m.ObserveProjection("invoice_line", 3)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.ConversionsTotal.WithLabelValues("DIRECT")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ConversionsTotal.WithLabelValues("FALLBACK")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.FallbacksTotal.WithLabelValues("no_rate")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.ProjectionLinesTotal.WithLabelValues("invoice_line")))

	count, err := testutil.GatherAndCount(reg, "exchange_rate_resolution_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestConversionMetrics_NilIsNoop(t *testing.T) {
	var m *ConversionMetrics
	assert.NotPanics(t, func() {
		m.ObserveConversion("DIRECT")
		m.ObserveFallback("store_unavailable")
		m.ObserveResolution("unresolved", time.Now())
		m.ObserveProjection("product", 1)
	})
}
