package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Unit is the measurement unit a product quantity is expressed in.
// Comparison only makes sense after quantities are normalized to a base
// unit: grams for mass, milliliters for volume, pieces for count.
type Unit string

const (
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "L"
	UnitPiece      Unit = "pcs"
)

var thousand = decimal.NewFromInt(1000)

// Normalize converts a quantity in the given unit to the base unit of its
// family: kg→g and L→ml multiply by 1000, everything else passes through.
// Unrecognized units keep the identity scale — the original app never
// validated the unit field, and stored data may carry arbitrary values, so
// an unknown unit compares as-is rather than failing the whole category.
func Normalize(quantity decimal.Decimal, unit Unit) decimal.Decimal {
	switch canonical(unit) {
	case UnitKilogram, UnitLiter:
		return quantity.Mul(thousand)
	default:
		return quantity
	}
}

// BaseSuffix returns the display suffix for the base unit of the unit's
// family: "/g", "/ml", "/pcs", or "/unit" for unrecognized units.
func BaseSuffix(unit Unit) string {
	switch canonical(unit) {
	case UnitGram, UnitKilogram:
		return "/g"
	case UnitMilliliter, UnitLiter:
		return "/ml"
	case UnitPiece:
		return "/pcs"
	default:
		return "/unit"
	}
}

// canonical maps a unit string to its enum constant, case-insensitively.
// Unknown values are returned lowercased so the Normalize/BaseSuffix
// switches fall through to their defaults.
func canonical(unit Unit) Unit {
	switch strings.ToLower(string(unit)) {
	case "g":
		return UnitGram
	case "kg":
		return UnitKilogram
	case "ml":
		return UnitMilliliter
	case "l":
		return UnitLiter
	case "pcs":
		return UnitPiece
	default:
		return Unit(strings.ToLower(string(unit)))
	}
}
