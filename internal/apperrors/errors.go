package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrRateUnresolved indicates that no applicable exchange rate exists for a currency pair.
// The reason is wrapped alongside it (ErrNoDirectRate, ErrNoInverseRate, ErrInvalidStoredRate).
var ErrRateUnresolved = errors.New("exchange rate unresolved")

// ErrStoreUnavailable indicates the rate store could not be read.
var ErrStoreUnavailable = errors.New("rate store unavailable")

// Reasons for an unresolved rate.
var (
	ErrNoDirectRate      = errors.New("no direct rate")
	ErrNoInverseRate     = errors.New("no inverse rate")
	ErrInvalidStoredRate = errors.New("invalid stored rate")
)

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound with errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches ErrValidation with errors.Is.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewUnresolvedRateError joins ErrRateUnresolved with the specific reason so both match errors.Is.
func NewUnresolvedRateError(fromCode, toCode string, reason error) error {
	return fmt.Errorf("%w: %s to %s: %w", ErrRateUnresolved, fromCode, toCode, reason)
}
