package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/erp_fx_service/internal/apperrors"
	portssvc "github.com/SscSPs/erp_fx_service/internal/core/ports/services"
	"github.com/SscSPs/erp_fx_service/internal/dto"
	"github.com/SscSPs/erp_fx_service/internal/middleware"
	"github.com/SscSPs/erp_fx_service/internal/utils"
	"github.com/gin-gonic/gin"
)

type projectionHandler struct {
	projector portssvc.PriceProjectorSvc
}

// RegisterProjectionRoutes registers the document re-denomination routes.
func RegisterProjectionRoutes(rg *gin.RouterGroup, projector portssvc.PriceProjectorSvc) {
	registerCustomValidators()
	h := &projectionHandler{projector: projector}

	projections := rg.Group("/projections")
	{
		projections.POST("/products", h.projectProducts)
		projections.POST("/invoices", h.projectInvoice)
		projections.POST("/payments", h.projectPayments)
	}
}

// bindProjection binds the target/asOf query and the JSON body. It writes the 400 itself.
func bindProjection(c *gin.Context, body any) (string, *time.Time, bool) {
	var params dto.ProjectionParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return "", nil, false
	}
	asOf, err := utils.ParseAsOf(params.AsOf)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", nil, false
	}
	if err := c.ShouldBindJSON(body); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind projection body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return "", nil, false
	}
	return params.Target, asOf, true
}

func writeProjectionError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Error("Projection failed", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to project document"})
}

// projectProducts godoc
// @Summary Project product prices
// @Description Re-denominates product prices into the target currency. Products without a rate keep their original price, flagged FALLBACK.
// @Tags projections
// @Accept  json
// @Produce  json
// @Param   target query string true "Target currency code"
// @Param   asOf query string false "Instant to convert at, default now"
// @Param   products body dto.ProjectProductsRequest true "Products"
// @Success 200 {array} dto.ProjectedProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /projections/products [post]
func (h *projectionHandler) projectProducts(c *gin.Context) {
	var req dto.ProjectProductsRequest
	target, asOf, ok := bindProjection(c, &req)
	if !ok {
		return
	}

	projected, err := h.projector.ProjectProducts(c.Request.Context(), dto.ToDomainProducts(req.Products), target, asOf)
	if err != nil {
		writeProjectionError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectedProductListResponse(projected))
}

// projectInvoice godoc
// @Summary Project an invoice
// @Description Converts every line into the target currency and recomputes subtotal, tax and total from the converted lines.
// @Tags projections
// @Accept  json
// @Produce  json
// @Param   target query string true "Target currency code"
// @Param   asOf query string false "Instant to convert at, default now"
// @Param   invoice body dto.ProjectInvoiceRequest true "Invoice"
// @Success 200 {object} dto.ProjectedInvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /projections/invoices [post]
func (h *projectionHandler) projectInvoice(c *gin.Context) {
	var req dto.ProjectInvoiceRequest
	target, asOf, ok := bindProjection(c, &req)
	if !ok {
		return
	}

	projected, err := h.projector.ProjectInvoice(c.Request.Context(), dto.ToDomainInvoice(req), target, asOf, req.TaxRate)
	if err != nil {
		writeProjectionError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectedInvoiceResponse(projected))
}

// projectPayments godoc
// @Summary Project payments
// @Description Converts payment amounts into the target currency and sums them.
// @Tags projections
// @Accept  json
// @Produce  json
// @Param   target query string true "Target currency code"
// @Param   asOf query string false "Instant to convert at, default now"
// @Param   payments body dto.ProjectPaymentsRequest true "Payments"
// @Success 200 {object} dto.ProjectedPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /projections/payments [post]
func (h *projectionHandler) projectPayments(c *gin.Context) {
	var req dto.ProjectPaymentsRequest
	target, asOf, ok := bindProjection(c, &req)
	if !ok {
		return
	}

	projected, err := h.projector.ProjectPayments(c.Request.Context(), dto.ToDomainPayments(req.Payments), target, asOf)
	if err != nil {
		writeProjectionError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectedPaymentsResponse(projected))
}
