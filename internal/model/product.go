package model

import (
	"time"

	"github.com/Pasiduchamod/CompareShop/internal/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is one priced offer inside a category. FinalPrice and UnitPrice
// are derived via the pricing package and recomputed atomically with every
// mutation of the raw fields.
type Product struct {
	ID         uuid.UUID       `json:"id"`
	Brand      string          `json:"brand,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Discount   decimal.Decimal `json:"discount"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       pricing.Unit    `json:"unit"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
