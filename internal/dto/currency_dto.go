package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type SetCurrencyRequest struct {
	Code string `json:"code" validate:"required,len=3"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CurrencyResponse struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type CurrencyListResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}
