package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProductRequest carries the raw user input for both create and update.
// Update replaces all mutable fields, so the two shapes are identical.
// Unit is deliberately not constrained to the known enum: stored data from
// older app versions may carry arbitrary unit strings, which normalize with
// an identity scale (see internal/pricing).
type ProductRequest struct {
	Brand    string          `json:"brand"    validate:"max=120"`
	Price    decimal.Decimal `json:"price"    validate:"required,gt=0"`
	Discount decimal.Decimal `json:"discount" validate:"min=0,max=100"`
	Quantity decimal.Decimal `json:"quantity" validate:"required,gt=0"`
	Unit     string          `json:"unit"     validate:"required,max=16"`
	Notes    string          `json:"notes"    validate:"max=500"`
}

// PricingPreviewRequest feeds the live unit-price preview shown while the
// user is still typing. Same validation as a real product.
type PricingPreviewRequest struct {
	Price    decimal.Decimal `json:"price"    validate:"required,gt=0"`
	Discount decimal.Decimal `json:"discount" validate:"min=0,max=100"`
	Quantity decimal.Decimal `json:"quantity" validate:"required,gt=0"`
	Unit     string          `json:"unit"     validate:"required,max=16"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID         uuid.UUID       `json:"id"`
	Brand      string          `json:"brand"`
	Price      decimal.Decimal `json:"price"`
	Discount   decimal.Decimal `json:"discount"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

type PricingPreviewResponse struct {
	FinalPrice decimal.Decimal `json:"final_price"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Display    string          `json:"display"`
}

// BestValueResponse carries the category-wide best value badge.
// ProductID is null for an empty category.
type BestValueResponse struct {
	ProductID *uuid.UUID `json:"product_id"`
}
