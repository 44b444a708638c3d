package accounting

import (
	"github.com/SscSPs/erp_fx_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// These helpers hold the invoice arithmetic shared by every projection so that line totals and
// header figures are always derived the same way from already-converted amounts.

// LineTotal is unitPrice*quantity - discount, rounded half-up to domain.AmountPrecision.
func LineTotal(unitPrice, quantity, discount decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(quantity).Sub(discount).Round(domain.AmountPrecision)
}

// Subtotal sums the line totals.
func Subtotal(lines []domain.ProjectedInvoiceLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.LineTotal)
	}
	return sum
}

// Tax applies rate to subtotal, rounded half-up to domain.AmountPrecision.
func Tax(subtotal, rate decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(rate).Round(domain.AmountPrecision)
}

// InvoiceTotal is subtotal + tax - discount.
func InvoiceTotal(subtotal, tax, discount decimal.Decimal) decimal.Decimal {
	return subtotal.Add(tax).Sub(discount)
}

// SumConverted totals converted amounts, fallback amounts included as-is.
func SumConverted(results []domain.ConversionResult) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range results {
		sum = sum.Add(r.ConvertedAmount)
	}
	return sum
}
