package utils

import (
	"github.com/SscSPs/erp_fx_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount with exactly domain.AmountPrecision places.
// Example: 81 returns "81.00", 123.457 returns "123.46"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(domain.AmountPrecision)
}

// FormatRate renders an exchange rate with exactly domain.RatePrecision places.
func FormatRate(rate decimal.Decimal) string {
	return rate.StringFixed(domain.RatePrecision)
}
