package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/Pasiduchamod/CompareShop/internal/dto"
	"github.com/Pasiduchamod/CompareShop/internal/model"
	"github.com/Pasiduchamod/CompareShop/internal/repository"
	"github.com/Pasiduchamod/CompareShop/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var ErrUnknownCurrency = errors.New("unknown currency code")

// currencies is the static reference table. USD is the default preference.
var currencies = []model.Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "LKR", Symbol: "Rs.", Name: "Sri Lankan Rupee"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{Code: "KRW", Symbol: "₩", Name: "South Korean Won"},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	{Code: "MXN", Symbol: "MX$", Name: "Mexican Peso"},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand"},
	{Code: "RUB", Symbol: "₽", Name: "Russian Ruble"},
}

// CurrencyService keeps the display-currency preference. The preference is
// persisted under its own key, separate from the catalog record.
type CurrencyService interface {
	Currencies(ctx context.Context) dto.CurrencyListResponse
	Current(ctx context.Context) dto.CurrencyResponse
	Set(ctx context.Context, req dto.SetCurrencyRequest) (dto.CurrencyResponse, error)
	Symbol() string
	FormatPrice(value decimal.Decimal, decimals int32) string
	Restore(blob []byte)
}

type currencyService struct {
	mu      sync.RWMutex
	current model.Currency
	saver   *worker.Saver
}

func NewCurrencyService(saver *worker.Saver) CurrencyService {
	return &currencyService{current: currencies[0], saver: saver}
}

func mapCurrency(c model.Currency) dto.CurrencyResponse {
	return dto.CurrencyResponse{Code: c.Code, Symbol: c.Symbol, Name: c.Name}
}

func (s *currencyService) Currencies(_ context.Context) dto.CurrencyListResponse {
	out := make([]dto.CurrencyResponse, 0, len(currencies))
	for _, c := range currencies {
		out = append(out, mapCurrency(c))
	}
	return dto.CurrencyListResponse{Currencies: out}
}

func (s *currencyService) Current(_ context.Context) dto.CurrencyResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return mapCurrency(s.current)
}

// Set switches the preference to a known code and mirrors it to the
// backend. Unknown codes are rejected — this is user input, not a stale
// reference.
func (s *currencyService) Set(_ context.Context, req dto.SetCurrencyRequest) (dto.CurrencyResponse, error) {
	for _, c := range currencies {
		if c.Code == req.Code {
			s.mu.Lock()
			s.current = c
			s.mu.Unlock()
			s.persist(c)
			return mapCurrency(c), nil
		}
	}
	return dto.CurrencyResponse{}, ErrUnknownCurrency
}

// Symbol returns the current currency symbol for display formatting.
func (s *currencyService) Symbol() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Symbol
}

// FormatPrice renders a price with the current symbol, e.g. "$14.00".
func (s *currencyService) FormatPrice(value decimal.Decimal, decimals int32) string {
	return s.Symbol() + value.StringFixed(decimals)
}

// Restore applies a persisted preference at startup. A corrupt or unknown
// saved value falls back to the default rather than failing startup.
func (s *currencyService) Restore(blob []byte) {
	if len(blob) == 0 {
		return
	}
	var saved model.Currency
	if err := json.Unmarshal(blob, &saved); err != nil {
		log.Warn().Err(err).Msg("ignoring corrupt currency preference")
		return
	}
	for _, c := range currencies {
		if c.Code == saved.Code {
			s.mu.Lock()
			s.current = c
			s.mu.Unlock()
			return
		}
	}
	log.Warn().Str("code", saved.Code).Msg("ignoring unknown persisted currency code")
}

func (s *currencyService) persist(c model.Currency) {
	blob, err := json.Marshal(c)
	if err != nil {
		log.Warn().Err(err).Msg("failed to serialize currency preference")
		return
	}
	s.saver.Enqueue(repository.KeyCurrency, blob)
}
