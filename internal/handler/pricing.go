package handler

import (
	"net/http"

	"github.com/Pasiduchamod/CompareShop/internal/dto"
	"github.com/Pasiduchamod/CompareShop/internal/service"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	svc      service.CatalogService
	currency service.CurrencyService
}

func NewPricingHandler(svc service.CatalogService, currency service.CurrencyService) *PricingHandler {
	return &PricingHandler{svc: svc, currency: currency}
}

// Preview POST /v1/pricing/preview — the live unit-price preview in the
// add-product form. Goes through the same pricing computation as a stored
// product, so the preview and the stored value can never disagree.
func (h *PricingHandler) Preview(c *gin.Context) {
	var req dto.PricingPreviewRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Preview(c.Request.Context(), req, h.currency.Symbol())
	if err != nil {
		writePricingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
