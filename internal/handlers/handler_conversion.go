package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_fx_service/internal/apperrors"
	portssvc "github.com/SscSPs/erp_fx_service/internal/core/ports/services"
	"github.com/SscSPs/erp_fx_service/internal/dto"
	"github.com/SscSPs/erp_fx_service/internal/middleware"
	"github.com/SscSPs/erp_fx_service/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type conversionHandler struct {
	conversionService portssvc.ConversionSvc
}

// RegisterConversionRoutes registers the single-amount conversion route.
func RegisterConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvc) {
	registerCustomValidators()
	h := &conversionHandler{conversionService: conversionService}

	rg.GET("/conversions", h.convert)
}

// convert godoc
// @Summary Convert an amount
// @Description Converts an amount between currencies. When no rate exists the amount is returned unconverted with provenance FALLBACK.
// @Tags conversions
// @Produce  json
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Param   amount query string true "Decimal amount"
// @Param   asOf query string false "Instant to convert at (RFC 3339 or YYYY-MM-DD), default now"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Malformed currency code, amount or asOf"
// @Security BearerAuth
// @Router /conversions [get]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a decimal number"})
		return
	}
	asOf, err := utils.ParseAsOf(params.AsOf)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.conversionService.Convert(c.Request.Context(), params.From, params.To, amount, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to convert amount", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert amount"})
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}
