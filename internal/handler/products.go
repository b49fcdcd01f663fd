package handler

import (
	"net/http"

	"github.com/Pasiduchamod/CompareShop/internal/apierror"
	"github.com/Pasiduchamod/CompareShop/internal/dto"
	"github.com/Pasiduchamod/CompareShop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductsHandler struct{ svc service.CatalogService }

func NewProductsHandler(svc service.CatalogService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// List GET /v1/categories/:id/products — empty array for a missing
// category, never an error for a read.
func (h *ProductsHandler) List(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid category id"))
		return
	}
	c.JSON(http.StatusOK, h.svc.ListProducts(c.Request.Context(), id))
}

// Create POST /v1/categories/:id/products — 422 on invalid numbers before
// any state changes, 204 when the category does not exist.
func (h *ProductsHandler) Create(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid category id"))
		return
	}
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.AddProduct(c.Request.Context(), id, req)
	if svcErr != nil {
		writePricingError(c, svcErr)
		return
	}
	if resp == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update PUT /v1/categories/:id/products/:productId — replaces all mutable
// fields and recomputes derived values; 204 even when the target is gone.
func (h *ProductsHandler) Update(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid category id"))
		return
	}
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid product id"))
		return
	}
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if svcErr := h.svc.UpdateProduct(c.Request.Context(), categoryID, productID, req); svcErr != nil {
		writePricingError(c, svcErr)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete DELETE /v1/categories/:id/products/:productId
func (h *ProductsHandler) Delete(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid category id"))
		return
	}
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid product id"))
		return
	}
	h.svc.DeleteProduct(c.Request.Context(), categoryID, productID)
	c.Status(http.StatusNoContent)
}

// BestValue GET /v1/categories/:id/best-value — the category-wide badge:
// minimum unit price over all products, null for an empty category.
func (h *ProductsHandler) BestValue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid category id"))
		return
	}
	c.JSON(http.StatusOK, dto.BestValueResponse{ProductID: h.svc.BestValue(c.Request.Context(), id)})
}
