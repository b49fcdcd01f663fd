package service

import (
	"context"
	"testing"

	"github.com/Pasiduchamod/CompareShop/internal/dto"
	"github.com/Pasiduchamod/CompareShop/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCurrency() CurrencyService {
	return NewCurrencyService(worker.NewSaver(newStubKV(), 8))
}

func TestCurrency_DefaultsToUSD(t *testing.T) {
	svc := newTestCurrency()

	current := svc.Current(context.Background())
	assert.Equal(t, "USD", current.Code)
	assert.Equal(t, "$", svc.Symbol())
}

func TestCurrency_ListContainsTheFullTable(t *testing.T) {
	svc := newTestCurrency()

	list := svc.Currencies(context.Background())
	assert.Len(t, list.Currencies, 16)
	assert.Equal(t, "USD", list.Currencies[0].Code, "default currency leads the table")
}

func TestCurrency_SetKnownCode(t *testing.T) {
	svc := newTestCurrency()
	ctx := context.Background()

	resp, err := svc.Set(ctx, dto.SetCurrencyRequest{Code: "LKR"})
	require.NoError(t, err)
	assert.Equal(t, "Rs.", resp.Symbol)
	assert.Equal(t, "LKR", svc.Current(ctx).Code)
	assert.Equal(t, "Rs.14.00", svc.FormatPrice(dec("14"), 2))
}

func TestCurrency_SetUnknownCodeRejected(t *testing.T) {
	svc := newTestCurrency()
	ctx := context.Background()

	_, err := svc.Set(ctx, dto.SetCurrencyRequest{Code: "XXX"})
	assert.ErrorIs(t, err, ErrUnknownCurrency)
	assert.Equal(t, "USD", svc.Current(ctx).Code, "rejected input leaves the preference alone")
}

func TestCurrency_RestoreAppliesSavedPreference(t *testing.T) {
	svc := newTestCurrency()

	svc.Restore([]byte(`{"code":"EUR","symbol":"€","name":"Euro"}`))
	assert.Equal(t, "EUR", svc.Current(context.Background()).Code)
}

func TestCurrency_RestoreTolerantOfBadBlobs(t *testing.T) {
	svc := newTestCurrency()
	ctx := context.Background()

	svc.Restore([]byte(`{not json`))
	assert.Equal(t, "USD", svc.Current(ctx).Code)

	svc.Restore([]byte(`{"code":"ZZZ"}`))
	assert.Equal(t, "USD", svc.Current(ctx).Code)

	svc.Restore(nil)
	assert.Equal(t, "USD", svc.Current(ctx).Code)
}
