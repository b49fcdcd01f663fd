package handler

import (
	"net/http"

	"github.com/Pasiduchamod/CompareShop/internal/apierror"
	"github.com/Pasiduchamod/CompareShop/internal/dto"
	"github.com/Pasiduchamod/CompareShop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoriesHandler struct{ svc service.CatalogService }

func NewCategoriesHandler(svc service.CatalogService) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// List GET /v1/categories — pinned first, then newest-created first.
func (h *CategoriesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListCategories(c.Request.Context()))
}

// Create POST /v1/categories
func (h *CategoriesHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusCreated, h.svc.CreateCategory(c.Request.Context(), req))
}

// Rename PUT /v1/categories/:id — 204 whether or not the id exists;
// renames of missing categories are deliberate no-ops.
func (h *CategoriesHandler) Rename(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid category id"))
		return
	}
	var req dto.RenameCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	h.svc.RenameCategory(c.Request.Context(), id, req)
	c.Status(http.StatusNoContent)
}

// Delete DELETE /v1/categories/:id — cascades to products and the selection.
func (h *CategoriesHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid category id"))
		return
	}
	h.svc.DeleteCategory(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

// TogglePin PATCH /v1/categories/:id/pin
func (h *CategoriesHandler) TogglePin(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid category id"))
		return
	}
	h.svc.TogglePin(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}
