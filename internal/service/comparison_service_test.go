package service

import (
	"context"
	"testing"

	"github.com/Pasiduchamod/CompareShop/internal/catalog"
	"github.com/Pasiduchamod/CompareShop/internal/dto"
	"github.com/Pasiduchamod/CompareShop/internal/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newComparisonFixture seeds one category with three products whose unit
// prices land at 0.016, 0.02 and 0.014, selects all three, and returns the
// ids in insertion order.
func newComparisonFixture(t *testing.T) (ComparisonService, *catalog.Store, uuid.UUID, []dto.ProductResponse) {
	t.Helper()

	store := catalog.NewStore()
	saver := worker.NewSaver(newStubKV(), 64)
	catSvc := NewCatalogService(store, saver)
	cmpSvc := NewComparisonService(store)
	ctx := context.Background()

	cat := catSvc.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Rice"})

	reqs := []dto.ProductRequest{
		{Brand: "Mid", Price: dec("10.00"), Discount: dec("20"), Quantity: dec("500"), Unit: "g"},   // 0.016
		{Brand: "Dear", Price: dec("20.00"), Discount: dec("0"), Quantity: dec("1"), Unit: "kg"},    // 0.02
		{Brand: "Cheap", Price: dec("14.00"), Discount: dec("0"), Quantity: dec("1"), Unit: "kg"},   // 0.014
	}

	var products []dto.ProductResponse
	for _, req := range reqs {
		p, err := catSvc.AddProduct(ctx, cat.ID, req)
		require.NoError(t, err)
		require.NotNil(t, p)
		products = append(products, *p)
		cmpSvc.ToggleSelection(ctx, p.ID)
	}
	return cmpSvc, store, cat.ID, products
}

func TestCompare_SavingsRelativeToMostExpensive(t *testing.T) {
	svc, _, catID, products := newComparisonFixture(t)

	resp := svc.Compare(context.Background(), catID, "$")
	require.Len(t, resp.Rows, 3)
	assert.Equal(t, "Rice", resp.CategoryName)

	// Rows stay in category insertion order, not selection order.
	mid, dear, cheap := resp.Rows[0], resp.Rows[1], resp.Rows[2]
	assert.Equal(t, products[0].ID, mid.Product.ID)

	assert.True(t, dear.MostExpensive)
	assert.True(t, dear.Savings.IsZero())
	assert.Zero(t, dear.SavingsPercent)

	// 0.02 - 0.016 = 0.004 → 20% of the 0.02 benchmark.
	assert.True(t, mid.Savings.Equal(dec("0.004")), "savings = %s", mid.Savings)
	assert.EqualValues(t, 20, mid.SavingsPercent)
	assert.False(t, mid.BestValue)

	assert.True(t, cheap.BestValue)
	assert.EqualValues(t, 30, cheap.SavingsPercent)
	require.NotNil(t, resp.BestValueID)
	assert.Equal(t, products[2].ID, *resp.BestValueID)

	assert.Equal(t, "$0.0160/g", mid.UnitPriceDisplay)
}

func TestCompare_ScopedToSelectionNotCategory(t *testing.T) {
	svc, _, catID, products := newComparisonFixture(t)
	ctx := context.Background()

	// Deselect the cheapest item: the comparison benchmark and badge must
	// shift to the remaining pair, even though the category-wide best value
	// still points at the deselected product.
	svc.ToggleSelection(ctx, products[2].ID)

	resp := svc.Compare(ctx, catID, "$")
	require.Len(t, resp.Rows, 2)
	require.NotNil(t, resp.BestValueID)
	assert.Equal(t, products[0].ID, *resp.BestValueID, "best of the selected pair is 0.016")

	assert.True(t, resp.Rows[0].BestValue)
	assert.True(t, resp.Rows[1].MostExpensive)
}

func TestCompare_UnknownCategoryYieldsEmptyRows(t *testing.T) {
	svc, _, _, _ := newComparisonFixture(t)

	resp := svc.Compare(context.Background(), uuid.New(), "$")
	assert.Empty(t, resp.Rows)
	assert.Nil(t, resp.BestValueID)
	assert.Empty(t, resp.CategoryName)
}

func TestCompare_EmptySelectionYieldsEmptyRows(t *testing.T) {
	svc, _, catID, _ := newComparisonFixture(t)
	ctx := context.Background()

	svc.ClearSelection(ctx)
	resp := svc.Compare(ctx, catID, "$")
	assert.Empty(t, resp.Rows)
	assert.Nil(t, resp.BestValueID)
}

func TestSelection_ToggleAndClear(t *testing.T) {
	svc, _, _, products := newComparisonFixture(t)
	ctx := context.Background()

	sel := svc.Selection(ctx)
	assert.Len(t, sel.ProductIDs, 3)
	assert.Equal(t, catalog.SelectionLimit, sel.Limit)

	sel = svc.ToggleSelection(ctx, products[1].ID)
	assert.Len(t, sel.ProductIDs, 2)
	assert.NotContains(t, sel.ProductIDs, products[1].ID)

	svc.ClearSelection(ctx)
	assert.Empty(t, svc.Selection(ctx).ProductIDs)
}

func TestBillTotal_SavingsCountDiscountedItemsOnly(t *testing.T) {
	store := catalog.NewStore()
	saver := worker.NewSaver(newStubKV(), 64)
	catSvc := NewCatalogService(store, saver)
	cmpSvc := NewComparisonService(store)
	ctx := context.Background()

	cat := catSvc.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Pantry"})
	discounted, err := catSvc.AddProduct(ctx, cat.ID, dto.ProductRequest{
		Brand: "A", Price: dec("10.00"), Discount: dec("10"), Quantity: dec("1"), Unit: "pcs",
	})
	require.NoError(t, err)
	fullPrice, err := catSvc.AddProduct(ctx, cat.ID, dto.ProductRequest{
		Brand: "B", Price: dec("5.00"), Discount: dec("0"), Quantity: dec("1"), Unit: "pcs",
	})
	require.NoError(t, err)

	resp := cmpSvc.BillTotal(ctx, []uuid.UUID{discounted.ID, fullPrice.ID})
	assert.True(t, resp.Total.Equal(dec("14.00")), "total = %s", resp.Total)
	assert.True(t, resp.TotalSavings.Equal(dec("1.00")), "savings = %s", resp.TotalSavings)
	assert.Equal(t, 2, resp.ItemCount)
}

func TestBillTotal_SkipsUnknownIDs(t *testing.T) {
	svc, _, _, products := newComparisonFixture(t)

	resp := svc.BillTotal(context.Background(), []uuid.UUID{products[1].ID, uuid.New()})
	assert.Equal(t, 1, resp.ItemCount)
	assert.True(t, resp.Total.Equal(dec("20.00")))
	assert.True(t, resp.TotalSavings.IsZero())
}

func TestBillProducts_AnnotatesCategory(t *testing.T) {
	svc, _, catID, products := newComparisonFixture(t)

	resp := svc.BillProducts(context.Background())
	require.Len(t, resp.Products, len(products))
	for _, p := range resp.Products {
		assert.Equal(t, catID, p.CategoryID)
		assert.Equal(t, "Rice", p.CategoryName)
	}
}
