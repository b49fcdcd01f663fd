package service

import (
	"context"

	"github.com/Pasiduchamod/CompareShop/internal/catalog"
	"github.com/Pasiduchamod/CompareShop/internal/dto"
	"github.com/Pasiduchamod/CompareShop/internal/model"
	"github.com/Pasiduchamod/CompareShop/internal/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ComparisonService serves the read-only comparison and bill queries.
// The comparison view covers only the current selection; the bill view
// covers an arbitrary, unbounded ad-hoc subset of the whole catalog. The
// two selections are independent by design.
type ComparisonService interface {
	ToggleSelection(ctx context.Context, productID uuid.UUID) dto.SelectionResponse
	ClearSelection(ctx context.Context)
	Selection(ctx context.Context) dto.SelectionResponse

	Compare(ctx context.Context, categoryID uuid.UUID, currencySymbol string) dto.ComparisonResponse
	BillProducts(ctx context.Context) dto.BillProductsResponse
	BillTotal(ctx context.Context, productIDs []uuid.UUID) dto.BillTotalResponse
}

type comparisonService struct {
	store *catalog.Store
}

func NewComparisonService(store *catalog.Store) ComparisonService {
	return &comparisonService{store: store}
}

// ── Selection ────────────────────────────────────────────────────────────────

func (s *comparisonService) ToggleSelection(_ context.Context, productID uuid.UUID) dto.SelectionResponse {
	s.store.ToggleSelection(productID)
	return dto.SelectionResponse{ProductIDs: s.store.SelectedIDs(), Limit: catalog.SelectionLimit}
}

func (s *comparisonService) ClearSelection(_ context.Context) {
	s.store.ClearSelection()
}

func (s *comparisonService) Selection(_ context.Context) dto.SelectionResponse {
	return dto.SelectionResponse{ProductIDs: s.store.SelectedIDs(), Limit: catalog.SelectionLimit}
}

// ── Comparison ───────────────────────────────────────────────────────────────

// Compare intersects the selection with one category's products, keeping the
// category's insertion order (not selection order), and annotates each row
// with savings relative to the most expensive selected item. The best-value
// badge here reflects only the selected set — the category-wide badge is a
// separate query and must not be conflated with this one.
func (s *comparisonService) Compare(_ context.Context, categoryID uuid.UUID, currencySymbol string) dto.ComparisonResponse {
	resp := dto.ComparisonResponse{CategoryID: categoryID}

	var category *model.Category
	for _, c := range s.store.Categories() {
		if c.ID == categoryID {
			category = &c
			break
		}
	}
	if category == nil {
		resp.Rows = []dto.ComparisonRow{}
		return resp
	}
	resp.CategoryName = category.Name

	selected := make(map[uuid.UUID]struct{})
	for _, id := range s.store.SelectedIDs() {
		selected[id] = struct{}{}
	}

	var rows []model.Product
	for _, p := range category.Products {
		if _, ok := selected[p.ID]; ok {
			rows = append(rows, p)
		}
	}
	if len(rows) == 0 {
		resp.Rows = []dto.ComparisonRow{}
		return resp
	}

	// Max and min unit price over the selected rows only
	maxUnitPrice := rows[0].UnitPrice
	best := rows[0]
	for _, p := range rows[1:] {
		if p.UnitPrice.GreaterThan(maxUnitPrice) {
			maxUnitPrice = p.UnitPrice
		}
		if p.UnitPrice.LessThan(best.UnitPrice) {
			best = p
		}
	}

	resp.Rows = make([]dto.ComparisonRow, 0, len(rows))
	for _, p := range rows {
		savings := maxUnitPrice.Sub(p.UnitPrice)
		row := dto.ComparisonRow{
			Product:          mapProduct(p),
			UnitPriceDisplay: pricing.FormatUnitPrice(p.UnitPrice, p.Unit, currencySymbol),
			Savings:          savings,
			MostExpensive:    savings.IsZero(),
			BestValue:        p.ID == best.ID,
		}
		if !savings.IsZero() {
			row.SavingsPercent = savings.Div(maxUnitPrice).Mul(oneHundred).Round(0).IntPart()
		}
		resp.Rows = append(resp.Rows, row)
	}

	bestID := best.ID
	resp.BestValueID = &bestID
	return resp
}

// ── Bill ─────────────────────────────────────────────────────────────────────

// BillProducts returns the full cross-category product set annotated with
// category names, in category display order.
func (s *comparisonService) BillProducts(_ context.Context) dto.BillProductsResponse {
	resp := dto.BillProductsResponse{Products: []dto.BillProduct{}}
	for _, c := range s.store.Categories() {
		for _, p := range c.Products {
			resp.Products = append(resp.Products, dto.BillProduct{
				Product:      mapProduct(p),
				CategoryID:   c.ID,
				CategoryName: c.Name,
			})
		}
	}
	return resp
}

// BillTotal sums final prices over the requested ids. Savings only count
// discounted items: full-price products contribute zero. Unknown ids are
// skipped — the bill view tolerates stale references like every other read.
func (s *comparisonService) BillTotal(_ context.Context, productIDs []uuid.UUID) dto.BillTotalResponse {
	wanted := make(map[uuid.UUID]struct{}, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = struct{}{}
	}

	total := decimal.Zero
	totalSavings := decimal.Zero
	count := 0
	for _, c := range s.store.Categories() {
		for _, p := range c.Products {
			if _, ok := wanted[p.ID]; !ok {
				continue
			}
			total = total.Add(p.FinalPrice)
			if p.Discount.IsPositive() {
				totalSavings = totalSavings.Add(p.Price.Sub(p.FinalPrice))
			}
			count++
		}
	}

	return dto.BillTotalResponse{Total: total, TotalSavings: totalSavings, ItemCount: count}
}
