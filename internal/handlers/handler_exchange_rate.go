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
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	rateResolver        portssvc.RateResolverSvc
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, resolver portssvc.RateResolverSvc) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		rateResolver:        resolver,
	}
}

// RegisterExchangeRateRoutes registers routes related to exchange rates.
func RegisterExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade, resolver portssvc.RateResolverSvc) {
	registerCustomValidators()
	h := newExchangeRateHandler(exchangeRateService, resolver)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.GET("/resolve", h.resolveExchangeRate)
		exchangeRates.GET("/:rateID", h.getExchangeRateByID)
		exchangeRates.POST("/:rateID/close", h.closeExchangeRate)
		exchangeRates.POST("/:rateID/deactivate", h.deactivateExchangeRate)
	}
}

// writeRateError maps service errors for rate rows to HTTP responses.
func writeRateError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
	}
}

// createExchangeRate godoc
// @Summary Create a new exchange rate
// @Description Records a quote for an ordered currency pair over a validity window. Existing rows are never edited.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "A rate with the same pair and effectiveFrom exists"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create exchange rate",
		slog.String("from", req.FromCurrencyCode),
		slog.String("to", req.ToCurrencyCode),
		slog.String("rate", req.Rate.String()),
		slog.Time("effective_from", req.EffectiveFrom),
	)

	createdRate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		writeRateError(c, logger, err, "Failed to create exchange rate")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(createdRate))
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Description Lists stored rate rows, most recently effective first, with keyset pagination
// @Tags exchange rates
// @Produce  json
// @Param   from query string false "From currency code"
// @Param   to query string false "To currency code"
// @Param   active query bool false "Only active rows"
// @Param   asOf query string false "Only rows effective at this instant (RFC 3339 or YYYY-MM-DD)"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from a previous page"
// @Success 200 {object} dto.ListExchangeRatesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list exchange rates"
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListExchangeRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.exchangeRateService.ListExchangeRates(c.Request.Context(), params)
	if err != nil {
		writeRateError(c, logger, err, "Failed to list exchange rates")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getExchangeRateByID godoc
// @Summary Get an exchange rate row
// @Tags exchange rates
// @Produce  json
// @Param   rateID path string true "Exchange rate ID"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/{rateID} [get]
func (h *exchangeRateHandler) getExchangeRateByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID := c.Param("rateID")

	rate, err := h.exchangeRateService.GetExchangeRateByID(c.Request.Context(), rateID)
	if err != nil {
		writeRateError(c, logger.With(slog.String("rate_id", rateID)), err, "Failed to retrieve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// closeExchangeRate godoc
// @Summary Close an exchange rate
// @Description Bounds a row's effectiveTo. The window can only be shortened.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rateID path string true "Exchange rate ID"
// @Param   close body dto.CloseExchangeRateRequest true "New end of validity"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid effectiveTo"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to close exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/{rateID}/close [post]
func (h *exchangeRateHandler) closeExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID := c.Param("rateID")

	var req dto.CloseExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.exchangeRateService.CloseExchangeRate(c.Request.Context(), rateID, req, userID)
	if err != nil {
		writeRateError(c, logger.With(slog.String("rate_id", rateID)), err, "Failed to close exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// deactivateExchangeRate godoc
// @Summary Deactivate an exchange rate
// @Tags exchange rates
// @Param   rateID path string true "Exchange rate ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to deactivate exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/{rateID}/deactivate [post]
func (h *exchangeRateHandler) deactivateExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID := c.Param("rateID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.exchangeRateService.DeactivateExchangeRate(c.Request.Context(), rateID, userID); err != nil {
		writeRateError(c, logger.With(slog.String("rate_id", rateID)), err, "Failed to deactivate exchange rate")
		return
	}
	c.Status(http.StatusNoContent)
}

// resolveExchangeRate godoc
// @Summary Resolve the applicable rate for a pair
// @Description Returns the direct rate, else the inverse of the reverse pair rounded to 4 places
// @Tags exchange rates
// @Produce  json
// @Param   from query string true "From currency code"
// @Param   to query string true "To currency code"
// @Param   asOf query string false "Instant to resolve at (RFC 3339 or YYYY-MM-DD), default now"
// @Success 200 {object} dto.RateResolutionResponse
// @Failure 400 {object} map[string]string "Malformed currency code or asOf"
// @Failure 404 {object} map[string]string "No rate in either direction"
// @Failure 503 {object} map[string]string "Rate store unavailable"
// @Security BearerAuth
// @Router /exchange-rates/resolve [get]
func (h *exchangeRateHandler) resolveExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ResolveRateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	asOf, err := utils.ParseAsOf(params.AsOf)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resolution, err := h.rateResolver.ResolveRate(c.Request.Context(), params.From, params.To, asOf)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrRateUnresolved):
			logger.Info("No exchange rate for pair", slog.String("from", params.From), slog.String("to", params.To))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrStoreUnavailable):
			logger.Error("Rate store unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Rate store unavailable"})
		default:
			logger.Error("Failed to resolve exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve exchange rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRateResolutionResponse(resolution))
}
