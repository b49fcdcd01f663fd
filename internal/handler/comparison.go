package handler

import (
	"net/http"

	"github.com/Pasiduchamod/CompareShop/internal/apierror"
	"github.com/Pasiduchamod/CompareShop/internal/dto"
	"github.com/Pasiduchamod/CompareShop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ComparisonHandler struct {
	svc      service.ComparisonService
	currency service.CurrencyService
}

func NewComparisonHandler(svc service.ComparisonService, currency service.CurrencyService) *ComparisonHandler {
	return &ComparisonHandler{svc: svc, currency: currency}
}

// Compare GET /v1/categories/:id/comparison — the side-by-side table over
// the currently selected products of one category.
func (h *ComparisonHandler) Compare(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid category id"))
		return
	}
	c.JSON(http.StatusOK, h.svc.Compare(c.Request.Context(), id, h.currency.Symbol()))
}

// Toggle POST /v1/selection/toggle — adds or removes a product from the
// comparison set. Toggling a new id while the set is full leaves the set
// unchanged; the response always carries the resulting membership.
func (h *ComparisonHandler) Toggle(c *gin.Context) {
	var req dto.ToggleSelectionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.ToggleSelection(c.Request.Context(), req.ProductID))
}

// Clear POST /v1/selection/clear
func (h *ComparisonHandler) Clear(c *gin.Context) {
	h.svc.ClearSelection(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Selection GET /v1/selection
func (h *ComparisonHandler) Selection(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Selection(c.Request.Context()))
}
