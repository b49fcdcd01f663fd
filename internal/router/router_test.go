package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Pasiduchamod/CompareShop/internal/catalog"
	"github.com/Pasiduchamod/CompareShop/internal/config"
	"github.com/Pasiduchamod/CompareShop/internal/dto"
	"github.com/Pasiduchamod/CompareShop/internal/repository"
	"github.com/Pasiduchamod/CompareShop/internal/service"
	"github.com/Pasiduchamod/CompareShop/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memKV struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func (s *memKV) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blobs[key], nil
}

func (s *memKV) Save(_ context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = blob
	return nil
}

func (s *memKV) Close() error { return nil }

var _ repository.KVStore = (*memKV)(nil)

func newTestRouter() *gin.Engine {
	cfg := &config.Config{Env: "test", SaveQueueSize: 64}
	store := catalog.NewStore()
	kv := &memKV{blobs: map[string][]byte{}}
	saver := worker.NewSaver(kv, cfg.SaveQueueSize)
	currencySvc := service.NewCurrencyService(saver)
	return New(cfg, store, kv, saver, currencySvc)
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func createCategory(t *testing.T, r *gin.Engine, name string) dto.CategoryResponse {
	t.Helper()
	w := do(t, r, http.MethodPost, "/v1/categories", gin.H{"name": name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.CategoryResponse](t, w)
}

func createProduct(t *testing.T, r *gin.Engine, categoryID uuid.UUID, body gin.H) dto.ProductResponse {
	t.Helper()
	w := do(t, r, http.MethodPost, fmt.Sprintf("/v1/categories/%s/products", categoryID), body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.ProductResponse](t, w)
}

func TestAPI_ProductLifecycle(t *testing.T) {
	r := newTestRouter()

	cat := createCategory(t, r, "Rice")
	p := createProduct(t, r, cat.ID, gin.H{
		"brand": "Acme", "price": 10, "discount": 20, "quantity": 500, "unit": "g",
	})
	assert.True(t, p.FinalPrice.Equal(decimal.RequireFromString("8")), "final price = %s", p.FinalPrice)
	assert.True(t, p.UnitPrice.Equal(decimal.RequireFromString("0.016")), "unit price = %s", p.UnitPrice)

	w := do(t, r, http.MethodGet, fmt.Sprintf("/v1/categories/%s/products", cat.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]dto.ProductResponse](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/v1/categories/%s/best-value", cat.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	best := decode[dto.BestValueResponse](t, w)
	require.NotNil(t, best.ProductID)
	assert.Equal(t, p.ID, *best.ProductID)

	w = do(t, r, http.MethodDelete, fmt.Sprintf("/v1/categories/%s/products/%s", cat.ID, p.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodGet, fmt.Sprintf("/v1/categories/%s/best-value", cat.ID), nil)
	assert.Nil(t, decode[dto.BestValueResponse](t, w).ProductID)
}

func TestAPI_InvalidNumbersAreUnprocessable(t *testing.T) {
	r := newTestRouter()
	cat := createCategory(t, r, "Rice")

	cases := []gin.H{
		{"brand": "A", "price": 10, "discount": 0, "quantity": 0, "unit": "g"},
		{"brand": "A", "price": 0, "discount": 0, "quantity": 1, "unit": "g"},
		{"brand": "A", "price": 10, "discount": 120, "quantity": 1, "unit": "g"},
	}
	for _, body := range cases {
		w := do(t, r, http.MethodPost, fmt.Sprintf("/v1/categories/%s/products", cat.ID), body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	}

	w := do(t, r, http.MethodGet, fmt.Sprintf("/v1/categories/%s/products", cat.ID), nil)
	assert.Empty(t, decode[[]dto.ProductResponse](t, w))
}

func TestAPI_MissingTargetsAreSilentNoContent(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodPost, "/v1/categories/"+uuid.NewString()+"/products", gin.H{
		"brand": "A", "price": 10, "discount": 0, "quantity": 1, "unit": "g",
	})
	assert.Equal(t, http.StatusNoContent, w.Code, "adding to a vanished category is not an error")

	w = do(t, r, http.MethodPut, "/v1/categories/"+uuid.NewString(), gin.H{"name": "Renamed"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodDelete, "/v1/categories/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAPI_MalformedIDIsBadRequest(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodGet, "/v1/categories/not-a-uuid/products", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_SelectionAndComparison(t *testing.T) {
	r := newTestRouter()
	cat := createCategory(t, r, "Rice")

	cheap := createProduct(t, r, cat.ID, gin.H{
		"brand": "Cheap", "price": 14, "discount": 0, "quantity": 1, "unit": "kg",
	})
	dear := createProduct(t, r, cat.ID, gin.H{
		"brand": "Dear", "price": 20, "discount": 0, "quantity": 1, "unit": "kg",
	})

	for _, id := range []uuid.UUID{cheap.ID, dear.ID} {
		w := do(t, r, http.MethodPost, "/v1/selection/toggle", gin.H{"product_id": id})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := do(t, r, http.MethodGet, fmt.Sprintf("/v1/categories/%s/comparison", cat.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	cmp := decode[dto.ComparisonResponse](t, w)
	require.Len(t, cmp.Rows, 2)
	require.NotNil(t, cmp.BestValueID)
	assert.Equal(t, cheap.ID, *cmp.BestValueID)
	assert.Equal(t, "$0.0140/g", cmp.Rows[0].UnitPriceDisplay)
	assert.EqualValues(t, 30, cmp.Rows[0].SavingsPercent)
	assert.True(t, cmp.Rows[1].MostExpensive)

	w = do(t, r, http.MethodPost, "/v1/selection/clear", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodGet, "/v1/selection", nil)
	assert.Empty(t, decode[dto.SelectionResponse](t, w).ProductIDs)
}

func TestAPI_BillTotal(t *testing.T) {
	r := newTestRouter()
	cat := createCategory(t, r, "Pantry")

	a := createProduct(t, r, cat.ID, gin.H{
		"brand": "A", "price": 10, "discount": 10, "quantity": 1, "unit": "pcs",
	})
	b := createProduct(t, r, cat.ID, gin.H{
		"brand": "B", "price": 5, "discount": 0, "quantity": 1, "unit": "pcs",
	})

	w := do(t, r, http.MethodPost, "/v1/bill/total", gin.H{"product_ids": []uuid.UUID{a.ID, b.ID}})
	require.Equal(t, http.StatusOK, w.Code)
	total := decode[dto.BillTotalResponse](t, w)
	assert.True(t, total.Total.Equal(decimal.RequireFromString("14")), "total = %s", total.Total)
	assert.True(t, total.TotalSavings.Equal(decimal.RequireFromString("1")))
	assert.Equal(t, 2, total.ItemCount)
}

func TestAPI_BillTotalEmptySubsetIsValidZeroBill(t *testing.T) {
	r := newTestRouter()
	cat := createCategory(t, r, "Pantry")
	createProduct(t, r, cat.ID, gin.H{
		"brand": "A", "price": 10, "discount": 0, "quantity": 1, "unit": "pcs",
	})

	w := do(t, r, http.MethodPost, "/v1/bill/total", gin.H{"product_ids": []uuid.UUID{}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	total := decode[dto.BillTotalResponse](t, w)
	assert.True(t, total.Total.IsZero())
	assert.True(t, total.TotalSavings.IsZero())
	assert.Equal(t, 0, total.ItemCount)
}

func TestAPI_BillPDF(t *testing.T) {
	r := newTestRouter()
	cat := createCategory(t, r, "Pantry")
	a := createProduct(t, r, cat.ID, gin.H{
		"brand": "A", "price": 10, "discount": 10, "quantity": 1, "unit": "pcs",
	})

	w := do(t, r, http.MethodPost, "/v1/bill/pdf", gin.H{"product_ids": []uuid.UUID{a.ID}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "bill.pdf")
	require.Greater(t, w.Body.Len(), 5)
	assert.Equal(t, "%PDF-", w.Body.String()[:5])
}

func TestAPI_PricingPreview(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodPost, "/v1/pricing/preview", gin.H{
		"price": 10, "discount": 20, "quantity": 500, "unit": "g",
	})
	require.Equal(t, http.StatusOK, w.Code)
	preview := decode[dto.PricingPreviewResponse](t, w)
	assert.Equal(t, "$0.0160/g", preview.Display)

	w = do(t, r, http.MethodPost, "/v1/pricing/preview", gin.H{
		"price": 10, "discount": 20, "quantity": -1, "unit": "g",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAPI_CurrencyRoundTrip(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodGet, "/v1/currencies", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[dto.CurrencyListResponse](t, w).Currencies, 16)

	w = do(t, r, http.MethodPut, "/v1/currency", gin.H{"code": "EUR"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "€", decode[dto.CurrencyResponse](t, w).Symbol)

	w = do(t, r, http.MethodGet, "/v1/currency", nil)
	assert.Equal(t, "EUR", decode[dto.CurrencyResponse](t, w).Code)

	w = do(t, r, http.MethodPut, "/v1/currency", gin.H{"code": "XXX"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAPI_Health(t *testing.T) {
	r := newTestRouter()

	w := do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}
