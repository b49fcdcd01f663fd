package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Selection ───────────────────────────────────────────────────────────────

type ToggleSelectionRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

type SelectionResponse struct {
	ProductIDs []uuid.UUID `json:"product_ids"`
	Limit      int         `json:"limit"`
}

// ─── Comparison ──────────────────────────────────────────────────────────────

// ComparisonRow is one column of the side-by-side table. Savings are
// relative to the most expensive (per base unit) item in the compared set:
// that item has zero savings and MostExpensive=true instead of a badge.
type ComparisonRow struct {
	Product          ProductResponse `json:"product"`
	UnitPriceDisplay string          `json:"unit_price_display"`
	Savings          decimal.Decimal `json:"savings"`
	SavingsPercent   int64           `json:"savings_percent"`
	MostExpensive    bool            `json:"most_expensive"`
	BestValue        bool            `json:"best_value"`
}

// ComparisonResponse covers only the products the user selected — the
// category-wide badge is a separate query (BestValueResponse).
type ComparisonResponse struct {
	CategoryID   uuid.UUID       `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Rows         []ComparisonRow `json:"rows"`
	BestValueID  *uuid.UUID      `json:"best_value_id"`
}

// ─── Bill ────────────────────────────────────────────────────────────────────

// BillProduct annotates a product with its owning category for the
// cross-category cart view.
type BillProduct struct {
	Product      ProductResponse `json:"product"`
	CategoryID   uuid.UUID       `json:"category_id"`
	CategoryName string          `json:"category_name"`
}

type BillProductsResponse struct {
	Products []BillProduct `json:"products"`
}

// BillTotalRequest selects an arbitrary subset of the full product set.
// This set is independent of the 5-item comparison selection and has no
// bound in either direction: an empty subset is a valid empty bill that
// totals to zero, not a validation error.
type BillTotalRequest struct {
	ProductIDs []uuid.UUID `json:"product_ids"`
}

type BillTotalResponse struct {
	Total        decimal.Decimal `json:"total"`
	TotalSavings decimal.Decimal `json:"total_savings"`
	ItemCount    int             `json:"item_count"`
}
