package handlers

import (
	"strings"
	"sync"

	"github.com/SscSPs/erp_fx_service/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerCustomValidators adds the currency_code tag to gin's validator engine.
func registerCustomValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("currency_code", validateCurrencyCode)
		}
	})
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return domain.IsValidCurrencyCode(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
}
