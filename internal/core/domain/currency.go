package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/SscSPs/erp_fx_service/internal/apperrors"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// NormalizeCurrencyCode trims and upper-cases a code and checks it is three letters.
// A malformed code is a caller bug, so it is reported as a validation error.
func NormalizeCurrencyCode(code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if !currencyCodePattern.MatchString(normalized) {
		return "", fmt.Errorf("%w: malformed currency code %q", apperrors.ErrValidation, code)
	}
	return normalized, nil
}

// IsValidCurrencyCode reports whether code is already in canonical form.
func IsValidCurrencyCode(code string) bool {
	return currencyCodePattern.MatchString(code)
}
