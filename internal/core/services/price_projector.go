package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/erp_fx_service/internal/apperrors"
	"github.com/SscSPs/erp_fx_service/internal/core/domain"
	portssvc "github.com/SscSPs/erp_fx_service/internal/core/ports/services"
	"github.com/SscSPs/erp_fx_service/internal/platform/metrics"
	"github.com/SscSPs/erp_fx_service/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	defaultProjectionConcurrency = 8
	defaultBaseCurrency          = "GHS"
)

// priceProjector implements portssvc.PriceProjectorSvc.
type priceProjector struct {
	BaseService
	resolver        portssvc.RateResolverSvc
	metrics         *metrics.ConversionMetrics
	now             func() time.Time
	defaultCurrency string
	taxRate         decimal.Decimal
	concurrency     int
}

// ProjectorOption configures a price projector.
type ProjectorOption func(*priceProjector)

// WithProjectorClock overrides the clock used when no as-of instant is given.
func WithProjectorClock(now func() time.Time) ProjectorOption {
	return func(p *priceProjector) {
		p.now = now
	}
}

// WithProjectorMetrics records projected item counts.
func WithProjectorMetrics(m *metrics.ConversionMetrics) ProjectorOption {
	return func(p *priceProjector) {
		p.metrics = m
	}
}

// WithDefaultBaseCurrency sets the currency assumed for products and payments without one.
func WithDefaultBaseCurrency(code string) ProjectorOption {
	return func(p *priceProjector) {
		if normalized, err := domain.NormalizeCurrencyCode(code); err == nil {
			p.defaultCurrency = normalized
		}
	}
}

// WithTaxRate sets the invoice tax rate used when a request does not supply one.
func WithTaxRate(rate decimal.Decimal) ProjectorOption {
	return func(p *priceProjector) {
		p.taxRate = rate
	}
}

// WithProjectionConcurrency bounds how many items of one document are converted at once.
func WithProjectionConcurrency(n int) ProjectorOption {
	return func(p *priceProjector) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// NewPriceProjector creates a projector resolving rates through resolver.
func NewPriceProjector(resolver portssvc.RateResolverSvc, options ...ProjectorOption) portssvc.PriceProjectorSvc {
	p := &priceProjector{
		resolver:        resolver,
		now:             time.Now,
		defaultCurrency: defaultBaseCurrency,
		taxRate:         decimal.RequireFromString("0.15"),
		concurrency:     defaultProjectionConcurrency,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

var _ portssvc.PriceProjectorSvc = (*priceProjector)(nil)

// newConverter returns a converter whose rates are memoized for one projection.
func (p *priceProjector) newConverter() *conversionService {
	return newConversionService(newMemoResolver(p.resolver),
		WithConversionClock(p.now),
		WithConversionMetrics(p.metrics))
}

func (p *priceProjector) ProjectProduct(ctx context.Context, product domain.Product, targetCode string, asOf *time.Time) (*domain.ProjectedProduct, error) {
	target, err := domain.NormalizeCurrencyCode(targetCode)
	if err != nil {
		return nil, err
	}
	at := asOfOrNow(asOf, p.now)

	projected := p.projectProduct(ctx, p.newConverter(), product, target, at)
	p.metrics.ObserveProjection("product", 1)
	return &projected, nil
}

func (p *priceProjector) ProjectProducts(ctx context.Context, products []domain.Product, targetCode string, asOf *time.Time) ([]domain.ProjectedProduct, error) {
	target, err := domain.NormalizeCurrencyCode(targetCode)
	if err != nil {
		return nil, err
	}
	at := asOfOrNow(asOf, p.now)
	converter := p.newConverter()

	projected := make([]domain.ProjectedProduct, len(products))
	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, product := range products {
		g.Go(func() error {
			projected[i] = p.projectProduct(ctx, converter, product, target, at)
			return nil
		})
	}
	_ = g.Wait()

	p.metrics.ObserveProjection("product", len(products))
	p.LogDebug(ctx, "Projected products",
		slog.String("target", target), slog.Int("count", len(products)))
	return projected, nil
}

func (p *priceProjector) projectProduct(ctx context.Context, converter *conversionService, product domain.Product, target string, at time.Time) domain.ProjectedProduct {
	source := p.sourceCurrency(product.BaseCurrency, p.defaultCurrency)
	projected := domain.ProjectedProduct{
		ProductID:      product.ProductID,
		SKU:            product.SKU,
		Name:           product.Name,
		SourceCurrency: source,
		Currency:       target,
		Price:          p.convertOrFallback(ctx, converter, source, target, product.Price, at),
	}
	if product.OriginalPrice != nil {
		original := p.convertOrFallback(ctx, converter, source, target, *product.OriginalPrice, at)
		projected.OriginalPrice = &original
	}
	return projected
}

// ProjectInvoice converts every line into the target currency and rebuilds the header totals
// from the converted lines.
func (p *priceProjector) ProjectInvoice(ctx context.Context, invoice domain.Invoice, targetCode string, asOf *time.Time, taxRate *decimal.Decimal) (*domain.ProjectedInvoice, error) {
	target, err := domain.NormalizeCurrencyCode(targetCode)
	if err != nil {
		return nil, err
	}
	header, err := domain.NormalizeCurrencyCode(invoice.Currency)
	if err != nil {
		return nil, err
	}
	rate := p.taxRate
	if taxRate != nil {
		rate = *taxRate
	}
	if rate.IsNegative() {
		return nil, apperrors.NewValidationError("tax rate must not be negative")
	}
	at := asOfOrNow(asOf, p.now)
	converter := p.newConverter()

	lines := make([]domain.ProjectedInvoiceLine, len(invoice.Lines))
	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, line := range invoice.Lines {
		g.Go(func() error {
			lines[i] = p.projectLine(ctx, converter, line, header, target, at)
			return nil
		})
	}
	_ = g.Wait()

	subtotal := accounting.Subtotal(lines)
	tax := accounting.Tax(subtotal, rate)
	discount := p.convertOrFallback(ctx, converter, header, target, invoice.Discount, at)

	projected := &domain.ProjectedInvoice{
		InvoiceID:      invoice.InvoiceID,
		Number:         invoice.Number,
		IssuedAt:       invoice.IssuedAt,
		SourceCurrency: header,
		Currency:       target,
		AsOf:           at,
		Lines:          lines,
		TaxRate:        rate,
		Subtotal:       subtotal,
		Tax:            tax,
		Total:          accounting.InvoiceTotal(subtotal, tax, discount.ConvertedAmount),
		Discount:       discount,
		AmountPaid:     p.convertOrFallback(ctx, converter, header, target, invoice.AmountPaid, at),
		AmountDue:      p.convertOrFallback(ctx, converter, header, target, invoice.AmountDue, at),
	}

	p.metrics.ObserveProjection("invoice_line", len(lines))
	if projected.HasFallback() {
		p.LogWarn(ctx, "Invoice projected with unconverted amounts",
			slog.String("invoice_id", invoice.InvoiceID), slog.String("target", target))
	}
	return projected, nil
}

func (p *priceProjector) projectLine(ctx context.Context, converter *conversionService, line domain.InvoiceLine, header, target string, at time.Time) domain.ProjectedInvoiceLine {
	source := p.sourceCurrency(line.Currency, header)
	unitPrice := p.convertOrFallback(ctx, converter, source, target, line.UnitPrice, at)
	discount := p.convertOrFallback(ctx, converter, source, target, line.Discount, at)

	return domain.ProjectedInvoiceLine{
		LineID:         line.LineID,
		ProductID:      line.ProductID,
		Description:    line.Description,
		SourceCurrency: source,
		Quantity:       line.Quantity,
		UnitPrice:      unitPrice,
		Discount:       discount,
		LineTotal:      accounting.LineTotal(unitPrice.ConvertedAmount, line.Quantity, discount.ConvertedAmount),
	}
}

func (p *priceProjector) ProjectPayments(ctx context.Context, payments []domain.PaymentRecord, targetCode string, asOf *time.Time) (*domain.ProjectedPayments, error) {
	target, err := domain.NormalizeCurrencyCode(targetCode)
	if err != nil {
		return nil, err
	}
	at := asOfOrNow(asOf, p.now)
	converter := p.newConverter()

	projected := make([]domain.ProjectedPayment, len(payments))
	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, payment := range payments {
		g.Go(func() error {
			source := p.sourceCurrency(payment.Currency, p.defaultCurrency)
			projected[i] = domain.ProjectedPayment{
				PaymentID: payment.PaymentID,
				Reference: payment.Reference,
				Method:    payment.Method,
				PaidAt:    payment.PaidAt,
				Amount:    p.convertOrFallback(ctx, converter, source, target, payment.Amount, at),
			}
			return nil
		})
	}
	_ = g.Wait()

	amounts := make([]domain.ConversionResult, len(projected))
	for i := range projected {
		amounts[i] = projected[i].Amount
	}
	total := accounting.SumConverted(amounts)

	p.metrics.ObserveProjection("payment", len(payments))
	return &domain.ProjectedPayments{
		Currency: target,
		AsOf:     at,
		Payments: projected,
		Total:    total,
	}, nil
}

// convertOrFallback never fails: a malformed item currency keeps the amount unconverted.
func (p *priceProjector) convertOrFallback(ctx context.Context, converter *conversionService, from, to string, amount decimal.Decimal, at time.Time) domain.ConversionResult {
	result, err := converter.Convert(ctx, from, to, amount, &at)
	if err != nil {
		p.LogWarn(ctx, "Item currency is malformed, keeping amount unconverted",
			slog.String("currency", from), slog.String("error", err.Error()))
		p.metrics.ObserveFallback("invalid_currency")
		return domain.FallbackResult(from, to, amount, at)
	}
	return result
}

func (p *priceProjector) sourceCurrency(code, fallback string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return fallback
	}
	return code
}
