package dto

import (
	"time"

	"github.com/SscSPs/erp_fx_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectionParams are the query parameters shared by all projection endpoints.
type ProjectionParams struct {
	Target string `form:"target" binding:"required,currency_code"`
	AsOf   string `form:"asOf"`
}

// ProductInput is a product as submitted for projection.
type ProductInput struct {
	ProductID     string           `json:"productID" binding:"required"`
	SKU           string           `json:"sku"`
	Name          string           `json:"name"`
	BaseCurrency  string           `json:"baseCurrency" binding:"omitempty,currency_code"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
}

// ProjectProductsRequest wraps the products to re-denominate.
type ProjectProductsRequest struct {
	Products []ProductInput `json:"products" binding:"required,min=1,dive"`
}

// InvoiceLineInput is an invoice line as submitted for projection.
type InvoiceLineInput struct {
	LineID      string          `json:"lineID"`
	ProductID   string          `json:"productID"`
	Description string          `json:"description"`
	Currency    string          `json:"currency"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    decimal.Decimal `json:"quantity"`
	Discount    decimal.Decimal `json:"discount"`
}

// ProjectInvoiceRequest is an invoice as submitted for projection.
// Header subtotal, tax and total are not read if sent. The projection recomputes them from the lines.
type ProjectInvoiceRequest struct {
	InvoiceID  string             `json:"invoiceID" binding:"required"`
	Number     string             `json:"number"`
	Currency   string             `json:"currency" binding:"required,currency_code"`
	IssuedAt   time.Time          `json:"issuedAt"`
	Lines      []InvoiceLineInput `json:"lines" binding:"required,min=1"`
	Discount   decimal.Decimal    `json:"discount"`
	AmountPaid decimal.Decimal    `json:"amountPaid"`
	AmountDue  decimal.Decimal    `json:"amountDue"`
	// TaxRate overrides the configured tax rate, e.g. "0.125".
	TaxRate *decimal.Decimal `json:"taxRate"`
}

// PaymentInput is a payment record as submitted for projection.
type PaymentInput struct {
	PaymentID string          `json:"paymentID" binding:"required"`
	Reference string          `json:"reference"`
	Method    string          `json:"method"`
	Currency  string          `json:"currency" binding:"omitempty,currency_code"`
	Amount    decimal.Decimal `json:"amount"`
	PaidAt    time.Time       `json:"paidAt"`
}

// ProjectPaymentsRequest wraps the payments to re-denominate.
type ProjectPaymentsRequest struct {
	Payments []PaymentInput `json:"payments" binding:"required,min=1,dive"`
}

// ProjectedProductResponse is a product priced in the target currency.
type ProjectedProductResponse struct {
	ProductID      string              `json:"productID"`
	SKU            string              `json:"sku,omitempty"`
	Name           string              `json:"name,omitempty"`
	SourceCurrency string              `json:"sourceCurrency"`
	Currency       string              `json:"currency"`
	Price          ConversionResponse  `json:"price"`
	OriginalPrice  *ConversionResponse `json:"originalPrice,omitempty"`
}

// ProjectedInvoiceLineResponse is one converted invoice line.
type ProjectedInvoiceLineResponse struct {
	LineID         string             `json:"lineID,omitempty"`
	ProductID      string             `json:"productID,omitempty"`
	Description    string             `json:"description,omitempty"`
	SourceCurrency string             `json:"sourceCurrency"`
	Quantity       decimal.Decimal    `json:"quantity"`
	UnitPrice      ConversionResponse `json:"unitPrice"`
	Discount       ConversionResponse `json:"discount"`
	LineTotal      decimal.Decimal    `json:"lineTotal"`
}

// ProjectedInvoiceResponse is an invoice re-denominated in the target currency.
type ProjectedInvoiceResponse struct {
	InvoiceID      string                         `json:"invoiceID"`
	Number         string                         `json:"number,omitempty"`
	IssuedAt       time.Time                      `json:"issuedAt"`
	SourceCurrency string                         `json:"sourceCurrency"`
	Currency       string                         `json:"currency"`
	AsOf           time.Time                      `json:"asOf"`
	Lines          []ProjectedInvoiceLineResponse `json:"lines"`
	TaxRate        decimal.Decimal                `json:"taxRate"`
	Subtotal       decimal.Decimal                `json:"subtotal"`
	Tax            decimal.Decimal                `json:"tax"`
	Total          decimal.Decimal                `json:"total"`
	Discount       ConversionResponse             `json:"discount"`
	AmountPaid     ConversionResponse             `json:"amountPaid"`
	AmountDue      ConversionResponse             `json:"amountDue"`
	HasFallback    bool                           `json:"hasFallback"`
}

// ProjectedPaymentResponse is one converted payment.
type ProjectedPaymentResponse struct {
	PaymentID string             `json:"paymentID"`
	Reference string             `json:"reference,omitempty"`
	Method    string             `json:"method,omitempty"`
	PaidAt    time.Time          `json:"paidAt"`
	Amount    ConversionResponse `json:"amount"`
}

// ProjectedPaymentsResponse is a set of payments in the target currency.
// HasFallback is set when Total includes an amount left in its source currency.
type ProjectedPaymentsResponse struct {
	Currency    string                     `json:"currency"`
	AsOf        time.Time                  `json:"asOf"`
	Payments    []ProjectedPaymentResponse `json:"payments"`
	Total       decimal.Decimal            `json:"total"`
	HasFallback bool                       `json:"hasFallback"`
}

// ToDomainProducts converts product inputs to domain products.
func ToDomainProducts(in []ProductInput) []domain.Product {
	out := make([]domain.Product, len(in))
	for i, p := range in {
		out[i] = domain.Product{
			ProductID:     p.ProductID,
			SKU:           p.SKU,
			Name:          p.Name,
			BaseCurrency:  p.BaseCurrency,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
		}
	}
	return out
}

// ToDomainInvoice converts an invoice request to a domain invoice.
func ToDomainInvoice(req ProjectInvoiceRequest) domain.Invoice {
	lines := make([]domain.InvoiceLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = domain.InvoiceLine{
			LineID:      l.LineID,
			ProductID:   l.ProductID,
			Description: l.Description,
			Currency:    l.Currency,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			Discount:    l.Discount,
		}
	}
	return domain.Invoice{
		InvoiceID:  req.InvoiceID,
		Number:     req.Number,
		Currency:   req.Currency,
		IssuedAt:   req.IssuedAt,
		Lines:      lines,
		Discount:   req.Discount,
		AmountPaid: req.AmountPaid,
		AmountDue:  req.AmountDue,
	}
}

// ToDomainPayments converts payment inputs to domain payment records.
func ToDomainPayments(in []PaymentInput) []domain.PaymentRecord {
	out := make([]domain.PaymentRecord, len(in))
	for i, p := range in {
		out[i] = domain.PaymentRecord{
			PaymentID: p.PaymentID,
			Reference: p.Reference,
			Method:    p.Method,
			Currency:  p.Currency,
			Amount:    p.Amount,
			PaidAt:    p.PaidAt,
		}
	}
	return out
}

// ToProjectedProductResponse converts a projected product to its DTO.
func ToProjectedProductResponse(p domain.ProjectedProduct) ProjectedProductResponse {
	return ProjectedProductResponse{
		ProductID:      p.ProductID,
		SKU:            p.SKU,
		Name:           p.Name,
		SourceCurrency: p.SourceCurrency,
		Currency:       p.Currency,
		Price:          ToConversionResponse(p.Price),
		OriginalPrice:  toConversionResponsePtr(p.OriginalPrice),
	}
}

// ToProjectedProductListResponse converts projected products to DTOs.
func ToProjectedProductListResponse(products []domain.ProjectedProduct) []ProjectedProductResponse {
	out := make([]ProjectedProductResponse, len(products))
	for i, p := range products {
		out[i] = ToProjectedProductResponse(p)
	}
	return out
}

// ToProjectedInvoiceResponse converts a projected invoice to its DTO.
func ToProjectedInvoiceResponse(inv *domain.ProjectedInvoice) ProjectedInvoiceResponse {
	lines := make([]ProjectedInvoiceLineResponse, len(inv.Lines))
	for i, l := range inv.Lines {
		lines[i] = ProjectedInvoiceLineResponse{
			LineID:         l.LineID,
			ProductID:      l.ProductID,
			Description:    l.Description,
			SourceCurrency: l.SourceCurrency,
			Quantity:       l.Quantity,
			UnitPrice:      ToConversionResponse(l.UnitPrice),
			Discount:       ToConversionResponse(l.Discount),
			LineTotal:      l.LineTotal,
		}
	}
	return ProjectedInvoiceResponse{
		InvoiceID:      inv.InvoiceID,
		Number:         inv.Number,
		IssuedAt:       inv.IssuedAt,
		SourceCurrency: inv.SourceCurrency,
		Currency:       inv.Currency,
		AsOf:           inv.AsOf,
		Lines:          lines,
		TaxRate:        inv.TaxRate,
		Subtotal:       inv.Subtotal,
		Tax:            inv.Tax,
		Total:          inv.Total,
		Discount:       ToConversionResponse(inv.Discount),
		AmountPaid:     ToConversionResponse(inv.AmountPaid),
		AmountDue:      ToConversionResponse(inv.AmountDue),
		HasFallback:    inv.HasFallback(),
	}
}

// ToProjectedPaymentsResponse converts projected payments to their DTO.
func ToProjectedPaymentsResponse(p *domain.ProjectedPayments) ProjectedPaymentsResponse {
	payments := make([]ProjectedPaymentResponse, len(p.Payments))
	for i, pay := range p.Payments {
		payments[i] = ProjectedPaymentResponse{
			PaymentID: pay.PaymentID,
			Reference: pay.Reference,
			Method:    pay.Method,
			PaidAt:    pay.PaidAt,
			Amount:    ToConversionResponse(pay.Amount),
		}
	}
	return ProjectedPaymentsResponse{
		Currency:    p.Currency,
		AsOf:        p.AsOf,
		Payments:    payments,
		Total:       p.Total,
		HasFallback: p.HasFallback(),
	}
}
