package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/erp_fx_service/internal/apperrors"
)

const dateOnlyLayout = "2006-01-02"

// ParseAsOf parses an optional as-of query value. An empty value yields nil, meaning now.
// Both RFC 3339 timestamps and plain dates (midnight UTC) are accepted.
func ParseAsOf(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(dateOnlyLayout, raw); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("%w: asOf must be RFC 3339 or YYYY-MM-DD, got %q", apperrors.ErrValidation, raw)
}
