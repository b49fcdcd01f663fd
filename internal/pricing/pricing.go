package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrice    = errors.New("price must be a non-negative number")
	ErrInvalidQuantity = errors.New("quantity must be a positive number")
	ErrInvalidDiscount = errors.New("discount must be between 0 and 100")
)

var oneHundred = decimal.NewFromInt(100)

// Pricing holds the two derived fields of a product. Both are recomputed
// together on every add/update — stale derived values are never stored.
type Pricing struct {
	FinalPrice decimal.Decimal
	UnitPrice  decimal.Decimal
}

// Compute applies the discount and derives the per-base-unit price:
//
//	finalPrice = price − price × discount/100
//	unitPrice  = finalPrice / Normalize(quantity, unit)
//
// Inputs are validated here so the division below can never hit zero or a
// negative quantity. This is the single pricing entry point — the add-product
// preview and the stored values both go through it.
func Compute(price, discountPercent, quantity decimal.Decimal, unit Unit) (Pricing, error) {
	if price.IsNegative() {
		return Pricing{}, ErrInvalidPrice
	}
	if !quantity.IsPositive() {
		return Pricing{}, ErrInvalidQuantity
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(oneHundred) {
		return Pricing{}, ErrInvalidDiscount
	}

	finalPrice := price.Sub(price.Mul(discountPercent).Div(oneHundred))
	unitPrice := finalPrice.Div(Normalize(quantity, unit))

	return Pricing{FinalPrice: finalPrice, UnitPrice: unitPrice}, nil
}

// FormatUnitPrice renders a unit price for display: currency symbol, value
// to 4 decimal places, base-unit suffix — e.g. "$0.0160/g".
func FormatUnitPrice(unitPrice decimal.Decimal, unit Unit, currencySymbol string) string {
	return fmt.Sprintf("%s%s%s", currencySymbol, unitPrice.StringFixed(4), BaseSuffix(unit))
}
