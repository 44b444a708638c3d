package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item priced in its base currency.
type Product struct {
	ProductID    string
	SKU          string
	Name         string
	BaseCurrency string // empty means the system default base currency
	Price        decimal.Decimal
	// OriginalPrice is the pre-sale (compare-at) price in the same base currency, if any.
	OriginalPrice *decimal.Decimal
}

// ProjectedProduct is a Product re-denominated in a single target currency.
type ProjectedProduct struct {
	ProductID      string
	SKU            string
	Name           string
	SourceCurrency string
	Currency       string
	Price          ConversionResult
	OriginalPrice  *ConversionResult
}

// InvoiceLine is one line of an invoice. Currency is the product's base currency and may differ
// from the invoice header currency; when empty the header currency applies.
type InvoiceLine struct {
	LineID      string
	ProductID   string
	Description string
	Currency    string
	UnitPrice   decimal.Decimal
	Quantity    decimal.Decimal
	Discount    decimal.Decimal
}

// Invoice is a billing document with a declared header currency. It carries no subtotal,
// tax or total: projection derives those from the converted lines.
type Invoice struct {
	InvoiceID  string
	Number     string
	Currency   string
	IssuedAt   time.Time
	Lines      []InvoiceLine
	Discount   decimal.Decimal // header-level, in the header currency
	AmountPaid decimal.Decimal
	AmountDue  decimal.Decimal
}

// ProjectedInvoiceLine holds the converted components and the line total recomputed from them.
type ProjectedInvoiceLine struct {
	LineID         string
	ProductID      string
	Description    string
	SourceCurrency string
	Quantity       decimal.Decimal
	UnitPrice      ConversionResult
	Discount       ConversionResult
	LineTotal      decimal.Decimal
}

// ProjectedInvoice is an Invoice fully re-denominated in Currency. Subtotal, Tax and Total are
// recomputed from the converted lines, never converted from the original header figures.
type ProjectedInvoice struct {
	InvoiceID      string
	Number         string
	IssuedAt       time.Time
	SourceCurrency string
	Currency       string
	AsOf           time.Time
	Lines          []ProjectedInvoiceLine
	TaxRate        decimal.Decimal
	Subtotal       decimal.Decimal
	Tax            decimal.Decimal
	Total          decimal.Decimal
	Discount       ConversionResult
	AmountPaid     ConversionResult
	AmountDue      ConversionResult
}

// HasFallback reports whether any amount in the invoice could not be converted.
func (p ProjectedInvoice) HasFallback() bool {
	if p.Discount.IsFallback() || p.AmountPaid.IsFallback() || p.AmountDue.IsFallback() {
		return true
	}
	for _, line := range p.Lines {
		if line.UnitPrice.IsFallback() || line.Discount.IsFallback() {
			return true
		}
	}
	return false
}

// PaymentRecord is a payment received against a document.
type PaymentRecord struct {
	PaymentID string
	Reference string
	Method    string
	Currency  string
	Amount    decimal.Decimal
	PaidAt    time.Time
}

// ProjectedPayment is a PaymentRecord with its amount converted.
type ProjectedPayment struct {
	PaymentID string
	Reference string
	Method    string
	PaidAt    time.Time
	Amount    ConversionResult
}

// ProjectedPayments is a set of payments in one currency plus their converted sum.
// Total includes fallback amounts at face value.
type ProjectedPayments struct {
	Currency string
	AsOf     time.Time
	Payments []ProjectedPayment
	Total    decimal.Decimal
}

// HasFallback reports whether any payment amount could not be converted.
func (p ProjectedPayments) HasFallback() bool {
	for _, pay := range p.Payments {
		if pay.Amount.IsFallback() {
			return true
		}
	}
	return false
}
