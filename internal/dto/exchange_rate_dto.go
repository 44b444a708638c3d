package dto

import (
	"time"

	"github.com/SscSPs/erp_fx_service/internal/core/domain"
	"github.com/SscSPs/erp_fx_service/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for creating a new exchange rate.
type CreateExchangeRateRequest struct {
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,currency_code"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,currency_code"`
	Rate             decimal.Decimal `json:"rate" binding:"required"`
	Source           string          `json:"source" binding:"max=100"`
	EffectiveFrom    time.Time       `json:"effectiveFrom" binding:"required"`
	EffectiveTo      *time.Time      `json:"effectiveTo"`
}

// CloseExchangeRateRequest bounds the validity window of an existing rate.
type CloseExchangeRateRequest struct {
	EffectiveTo time.Time `json:"effectiveTo" binding:"required"`
}

// ListExchangeRatesParams defines query parameters for listing exchange rates.
type ListExchangeRatesParams struct {
	FromCurrencyCode string `form:"from" binding:"omitempty,currency_code"`
	ToCurrencyCode   string `form:"to" binding:"omitempty,currency_code"`
	ActiveOnly       bool   `form:"active,default=false"`
	AsOf             string `form:"asOf"`
	Limit            int    `form:"limit,default=20" binding:"min=1,max=200"`
	NextToken        string `form:"nextToken"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	Source           string          `json:"source"`
	EffectiveFrom    time.Time       `json:"effectiveFrom"`
	EffectiveTo      *time.Time      `json:"effectiveTo,omitempty"`
	IsActive         bool            `json:"isActive"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy    string          `json:"lastUpdatedBy"`
}

// ListExchangeRatesResponse wraps a page of exchange rates.
type ListExchangeRatesResponse struct {
	ExchangeRates []ExchangeRateResponse `json:"exchangeRates"`
	NextToken     *string                `json:"nextToken,omitempty"`
}

// ResolveRateParams defines query parameters for resolving a rate.
type ResolveRateParams struct {
	From string `form:"from" binding:"required,currency_code"`
	To   string `form:"to" binding:"required,currency_code"`
	AsOf string `form:"asOf"`
}

// RateResolutionResponse is the rate chosen for a pair, with its provenance.
type RateResolutionResponse struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	AsOf             time.Time       `json:"asOf"`
	Rate             decimal.Decimal `json:"rate"`
	FormattedRate    string          `json:"formattedRate"`
	Provenance       string          `json:"provenance"`
	ExchangeRateID   string          `json:"exchangeRateID,omitempty"`
	Source           string          `json:"source,omitempty"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:   rate.ExchangeRateID,
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             rate.Rate,
		Source:           rate.Source,
		EffectiveFrom:    rate.EffectiveFrom,
		EffectiveTo:      rate.EffectiveTo,
		IsActive:         rate.IsActive,
		CreatedAt:        rate.CreatedAt,
		CreatedBy:        rate.CreatedBy,
		LastUpdatedAt:    rate.LastUpdatedAt,
		LastUpdatedBy:    rate.LastUpdatedBy,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ToRateResolutionResponse converts a domain.RateResolution to its DTO.
func ToRateResolutionResponse(res *domain.RateResolution) RateResolutionResponse {
	return RateResolutionResponse{
		FromCurrencyCode: res.FromCurrencyCode,
		ToCurrencyCode:   res.ToCurrencyCode,
		AsOf:             res.AsOf,
		Rate:             res.Rate,
		FormattedRate:    utils.FormatRate(res.Rate),
		Provenance:       string(res.Provenance),
		ExchangeRateID:   res.ExchangeRateID,
		Source:           res.Source,
	}
}
