package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oyedot/vendorhub/internal/adapter/http/dto"
	"github.com/oyedot/vendorhub/internal/domain"
	"github.com/oyedot/vendorhub/internal/usecase"
)

func newCurrencyHandler(rates []domain.ExchangeRate) *CurrencyHandler {
	uc := usecase.NewCurrencyUseCase(
		&rateRepoStub{listFn: func(ctx context.Context) ([]domain.ExchangeRate, error) {
			return rates, nil
		}},
		&productRepoStub{},
		&cacheStub{},
		time.Minute,
		"USD",
	)
	return NewCurrencyHandler(uc)
}

func TestCurrencyHandler_Convert_Success(t *testing.T) {
	h := newCurrencyHandler([]domain.ExchangeRate{
		{From: "USD", To: "EUR", Rate: decimal.RequireFromString("0.5"), UpdatedAt: time.Now()},
	})

	req := httptest.NewRequest(http.MethodGet, "/currency/convert?amount=100&from=usd&to=eur", nil)
	rec := httptest.NewRecorder()

	h.Convert(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ConvertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Converted.Equal(decimal.RequireFromString("50")) {
		t.Fatalf("expected converted 50, got %s", resp.Converted)
	}
	if resp.From != "USD" || resp.To != "EUR" {
		t.Fatalf("expected normalized codes, got %s -> %s", resp.From, resp.To)
	}
}

func TestCurrencyHandler_Convert_InvalidAmount(t *testing.T) {
	h := newCurrencyHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/currency/convert?amount=abc&from=USD&to=EUR", nil)
	rec := httptest.NewRecorder()

	h.Convert(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCurrencyHandler_Convert_NoRatePath(t *testing.T) {
	h := newCurrencyHandler([]domain.ExchangeRate{
		{From: "USD", To: "EUR", Rate: decimal.RequireFromString("0.5"), UpdatedAt: time.Now()},
	})

	req := httptest.NewRequest(http.MethodGet, "/currency/convert?amount=10&from=GBP&to=INR", nil)
	rec := httptest.NewRecorder()

	h.Convert(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCurrencyHandler_Info(t *testing.T) {
	h := newCurrencyHandler([]domain.ExchangeRate{
		{From: "USD", To: "EUR", Rate: decimal.RequireFromString("0.92"), UpdatedAt: time.Now()},
	})

	req := httptest.NewRequest(http.MethodGet, "/currency", nil)
	rec := httptest.NewRecorder()

	h.Info(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.CurrencyInfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.DefaultCurrency != "USD" {
		t.Fatalf("expected default currency USD, got %s", resp.DefaultCurrency)
	}
	if len(resp.ExchangeRates) != 1 {
		t.Fatalf("expected 1 rate, got %d", len(resp.ExchangeRates))
	}
}
