package handler

import (
	"net/http"

	"github.com/Pasiduchamod/CompareShop/internal/dto"
	"github.com/Pasiduchamod/CompareShop/internal/infra"
	"github.com/Pasiduchamod/CompareShop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BillHandler struct {
	svc      service.ComparisonService
	currency service.CurrencyService
}

func NewBillHandler(svc service.ComparisonService, currency service.CurrencyService) *BillHandler {
	return &BillHandler{svc: svc, currency: currency}
}

// Products GET /v1/bill/products — every product across all categories,
// annotated with its category, for the cart multi-select view.
func (h *BillHandler) Products(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.BillProducts(c.Request.Context()))
}

// Total POST /v1/bill/total — aggregates an ad-hoc id set into a bill
// total plus the savings from discounted items. The set has no size cap
// and is unrelated to the comparison selection; an empty set is a valid
// empty bill, not an error.
func (h *BillHandler) Total(c *gin.Context) {
	var req dto.BillTotalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.BillTotal(c.Request.Context(), req.ProductIDs))
}

// PDF POST /v1/bill/pdf — renders the same id set as a downloadable
// receipt-style document. Unknown ids are skipped exactly as in Total.
func (h *BillHandler) PDF(c *gin.Context) {
	var req dto.BillTotalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	ctx := c.Request.Context()

	wanted := make(map[uuid.UUID]struct{}, len(req.ProductIDs))
	for _, id := range req.ProductIDs {
		wanted[id] = struct{}{}
	}
	var items []dto.BillProduct
	for _, bp := range h.svc.BillProducts(ctx).Products {
		if _, ok := wanted[bp.Product.ID]; ok {
			items = append(items, bp)
		}
	}

	blob, err := infra.GenerateBillPDF(items, h.svc.BillTotal(ctx, req.ProductIDs), h.currency.Symbol())
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.Header("Content-Disposition", `attachment; filename="bill.pdf"`)
	c.Data(http.StatusOK, "application/pdf", blob)
}
