package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/erp_fx_service/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExchangeRate_IsEffectiveAt(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	dec := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rate domain.ExchangeRate
		asOf time.Time
		want bool
	}{
		{
			name: "open-ended window",
			rate: domain.ExchangeRate{EffectiveFrom: jan, IsActive: true},
			asOf: jun,
			want: true,
		},
		{
			name: "effectiveFrom is inclusive",
			rate: domain.ExchangeRate{EffectiveFrom: jun, IsActive: true},
			asOf: jun,
			want: true,
		},
		{
			name: "effectiveTo is inclusive",
			rate: domain.ExchangeRate{EffectiveFrom: jan, EffectiveTo: timePtr(jun), IsActive: true},
			asOf: jun,
			want: true,
		},
		{
			name: "not yet effective",
			rate: domain.ExchangeRate{EffectiveFrom: dec, IsActive: true},
			asOf: jun,
			want: false,
		},
		{
			name: "expired",
			rate: domain.ExchangeRate{EffectiveFrom: jan, EffectiveTo: timePtr(jun), IsActive: true},
			asOf: dec,
			want: false,
		},
		{
			name: "inactive",
			rate: domain.ExchangeRate{EffectiveFrom: jan, IsActive: false},
			asOf: jun,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rate.IsEffectiveAt(tt.asOf))
		})
	}
}

func TestExchangeRate_HasValidRate(t *testing.T) {
	assert.True(t, domain.ExchangeRate{Rate: decimal.RequireFromString("0.081")}.HasValidRate())
	assert.False(t, domain.ExchangeRate{Rate: decimal.Zero}.HasValidRate())
	assert.False(t, domain.ExchangeRate{Rate: decimal.NewFromInt(-2)}.HasValidRate())
}

func TestNormalizeCurrencyCode(t *testing.T) {
	code, err := domain.NormalizeCurrencyCode(" ghs ")
	assert.NoError(t, err)
	assert.Equal(t, "GHS", code)

	for _, bad := range []string{"", "US", "USDT", "U$D", "12A"} {
		_, err := domain.NormalizeCurrencyCode(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
