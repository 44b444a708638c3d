package services

import (
	"context"
	"time"

	"github.com/SscSPs/erp_fx_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateResolverSvc picks the single applicable rate for an ordered pair at an instant.
type RateResolverSvc interface {
	// ResolveRate returns the direct rate, else the rounded inverse, else an error wrapping
	// apperrors.ErrRateUnresolved. Store failures wrap apperrors.ErrStoreUnavailable.
	// A nil asOf means now.
	ResolveRate(ctx context.Context, fromCode, toCode string, asOf *time.Time) (*domain.RateResolution, error)
}

// ConversionSvc converts single amounts. It only returns an error for malformed currency codes;
// an unresolvable rate yields a FALLBACK result instead.
type ConversionSvc interface {
	Convert(ctx context.Context, fromCode, toCode string, amount decimal.Decimal, asOf *time.Time) (domain.ConversionResult, error)
}

// PriceProjectorSvc re-denominates composite documents into one target currency.
type PriceProjectorSvc interface {
	ProjectProduct(ctx context.Context, product domain.Product, targetCode string, asOf *time.Time) (*domain.ProjectedProduct, error)
	ProjectProducts(ctx context.Context, products []domain.Product, targetCode string, asOf *time.Time) ([]domain.ProjectedProduct, error)
	// ProjectInvoice recomputes subtotal, tax and total from converted lines. A nil taxRate uses
	// the configured default.
	ProjectInvoice(ctx context.Context, invoice domain.Invoice, targetCode string, asOf *time.Time, taxRate *decimal.Decimal) (*domain.ProjectedInvoice, error)
	ProjectPayments(ctx context.Context, payments []domain.PaymentRecord, targetCode string, asOf *time.Time) (*domain.ProjectedPayments, error)
}
