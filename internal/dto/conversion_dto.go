package dto

import (
	"time"

	"github.com/SscSPs/erp_fx_service/internal/core/domain"
	"github.com/SscSPs/erp_fx_service/internal/utils"
	"github.com/shopspring/decimal"
)

// ConvertParams defines query parameters for a single conversion.
type ConvertParams struct {
	From   string `form:"from" binding:"required,currency_code"`
	To     string `form:"to" binding:"required,currency_code"`
	Amount string `form:"amount" binding:"required"`
	AsOf   string `form:"asOf"`
}

// ConversionResponse is a converted amount with the rate and provenance that produced it.
// RateUnavailable is set when the amount is the unconverted original (provenance FALLBACK).
type ConversionResponse struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	InputAmount      decimal.Decimal `json:"inputAmount"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	FormattedAmount  string          `json:"formattedAmount"`
	CurrencyCode     string          `json:"currencyCode"`
	RateUsed         decimal.Decimal `json:"rateUsed"`
	Provenance       string          `json:"provenance"`
	RateUnavailable  bool            `json:"rateUnavailable"`
	AsOf             time.Time       `json:"asOf"`
}

// ToConversionResponse converts a domain.ConversionResult to its DTO. On fallback the amount is
// still denominated in the source currency, which CurrencyCode reflects.
func ToConversionResponse(res domain.ConversionResult) ConversionResponse {
	currencyCode := res.ToCurrencyCode
	if res.IsFallback() {
		currencyCode = res.FromCurrencyCode
	}
	return ConversionResponse{
		FromCurrencyCode: res.FromCurrencyCode,
		ToCurrencyCode:   res.ToCurrencyCode,
		InputAmount:      res.InputAmount,
		ConvertedAmount:  res.ConvertedAmount,
		FormattedAmount:  utils.FormatAmount(res.ConvertedAmount),
		CurrencyCode:     currencyCode,
		RateUsed:         res.RateUsed,
		Provenance:       string(res.Provenance),
		RateUnavailable:  res.IsFallback(),
		AsOf:             res.AsOf,
	}
}

func toConversionResponsePtr(res *domain.ConversionResult) *ConversionResponse {
	if res == nil {
		return nil
	}
	out := ToConversionResponse(*res)
	return &out
}
