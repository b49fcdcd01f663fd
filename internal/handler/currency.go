package handler

import (
	"errors"
	"net/http"

	"github.com/Pasiduchamod/CompareShop/internal/apierror"
	"github.com/Pasiduchamod/CompareShop/internal/dto"
	"github.com/Pasiduchamod/CompareShop/internal/service"

	"github.com/gin-gonic/gin"
)

type CurrencyHandler struct{ svc service.CurrencyService }

func NewCurrencyHandler(svc service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{svc: svc}
}

// List GET /v1/currencies
func (h *CurrencyHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Currencies(c.Request.Context()))
}

// Current GET /v1/currency
func (h *CurrencyHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Current(c.Request.Context()))
}

// Set PUT /v1/currency
func (h *CurrencyHandler) Set(c *gin.Context) {
	var req dto.SetCurrencyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Set(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCurrency) {
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("internal error"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
