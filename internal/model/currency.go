package model

// Currency is static reference data for price display. Formatting is a pure
// display concern; the comparison engine itself is currency-agnostic.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
