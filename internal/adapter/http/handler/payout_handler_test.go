package handler

import (
	"bytes"
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

func newPayoutHandler(orders *orderRepoStub, payouts *payoutRepoStub, vendors *vendorRepoStub) *PayoutHandler {
	uc := usecase.NewPayoutUseCase(orders, payouts, vendors, &staticIDGen{id: "payout-1"}, passRetrier{})
	return NewPayoutHandler(uc)
}

func emptyOrderRepo() *orderRepoStub {
	return &orderRepoStub{
		lifetimeFn: func(ctx context.Context, vendorID string) (decimal.Decimal, error) {
			return decimal.Zero, nil
		},
		listPaidInWindowFn: func(ctx context.Context, vendorID string, from, to time.Time) ([]domain.Order, error) {
			return nil, nil
		},
		listCompletedFn: func(ctx context.Context, vendorID string) ([]domain.VendorOrder, error) {
			return nil, nil
		},
		listRefundedFn: func(ctx context.Context, vendorID string) ([]domain.VendorOrder, error) {
			return nil, nil
		},
	}
}

func TestPayoutHandler_Request_Success(t *testing.T) {
	orders := emptyOrderRepo()
	orders.lifetimeFn = func(ctx context.Context, vendorID string) (decimal.Decimal, error) {
		return decimal.RequireFromString("500"), nil
	}

	var created *domain.Payout
	payouts := &payoutRepoStub{
		createFn: func(ctx context.Context, payout *domain.Payout) error {
			created = payout
			return nil
		},
		sumByStatusFn: func(ctx context.Context, vendorID string) (decimal.Decimal, decimal.Decimal, error) {
			return decimal.Zero, decimal.Zero, nil
		},
	}
	vendors := &vendorRepoStub{
		getByIDFn: func(ctx context.Context, id string) (*domain.Vendor, error) {
			return &domain.Vendor{ID: id, LedgerCurrency: "USD", PayoutAccount: "****1234"}, nil
		},
	}

	h := newPayoutHandler(orders, payouts, vendors)

	body, _ := json.Marshal(dto.RequestPayoutRequest{Amount: decimal.RequireFromString("100")})
	req := authed(httptest.NewRequest(http.MethodPost, "/payouts/request", bytes.NewReader(body)), "vendor-1")
	rec := httptest.NewRecorder()

	h.Request(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if created == nil {
		t.Fatal("expected payout to be created")
	}
	if created.VendorID != "vendor-1" || !created.Amount.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("unexpected payout: %+v", created)
	}
	if created.Status != domain.PayoutPending {
		t.Fatalf("expected pending status, got %s", created.Status)
	}
}

func TestPayoutHandler_Request_InsufficientBalance(t *testing.T) {
	orders := emptyOrderRepo()
	orders.lifetimeFn = func(ctx context.Context, vendorID string) (decimal.Decimal, error) {
		return decimal.RequireFromString("100"), nil
	}

	payouts := &payoutRepoStub{
		createFn: func(ctx context.Context, payout *domain.Payout) error {
			t.Fatal("Create should not be called")
			return nil
		},
		sumByStatusFn: func(ctx context.Context, vendorID string) (decimal.Decimal, decimal.Decimal, error) {
			return decimal.RequireFromString("60"), decimal.RequireFromString("30"), nil
		},
	}
	vendors := &vendorRepoStub{
		getByIDFn: func(ctx context.Context, id string) (*domain.Vendor, error) {
			return &domain.Vendor{ID: id, LedgerCurrency: "USD"}, nil
		},
	}

	h := newPayoutHandler(orders, payouts, vendors)

	// Available balance is 100 - 60 - 30 = 10.
	body, _ := json.Marshal(dto.RequestPayoutRequest{Amount: decimal.RequireFromString("50")})
	req := authed(httptest.NewRequest(http.MethodPost, "/payouts/request", bytes.NewReader(body)), "vendor-1")
	rec := httptest.NewRecorder()

	h.Request(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPayoutHandler_Request_Unauthenticated(t *testing.T) {
	h := newPayoutHandler(emptyOrderRepo(), &payoutRepoStub{}, &vendorRepoStub{})

	req := httptest.NewRequest(http.MethodPost, "/payouts/request", bytes.NewBufferString("{}"))
	rec := httptest.NewRecorder()

	h.Request(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestPayoutHandler_Transactions_FiltersByType(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	orders := emptyOrderRepo()
	orders.listCompletedFn = func(ctx context.Context, vendorID string) ([]domain.VendorOrder, error) {
		return []domain.VendorOrder{{
			Order: domain.Order{
				ID:            "order-1",
				Currency:      "USD",
				PaymentStatus: domain.PaymentCompleted,
				CreatedAt:     now,
			},
			ItemsTotal: decimal.RequireFromString("80"),
		}}, nil
	}

	payouts := &payoutRepoStub{
		listFn: func(ctx context.Context, vendorID string) ([]domain.Payout, error) {
			return []domain.Payout{{
				ID:        "p-1",
				Amount:    decimal.RequireFromString("40"),
				Currency:  "USD",
				Status:    domain.PayoutCompleted,
				Account:   "****1234",
				CreatedAt: now.Add(-time.Hour),
			}}, nil
		},
	}

	h := newPayoutHandler(orders, payouts, &vendorRepoStub{})

	req := authed(httptest.NewRequest(http.MethodGet, "/transactions?type=earning", nil), "vendor-1")
	rec := httptest.NewRecorder()

	h.Transactions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.TransactionPageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Transactions) != 1 {
		t.Fatalf("expected 1 earning record, got total=%d len=%d", resp.Total, len(resp.Transactions))
	}
	if resp.Transactions[0].Type != string(domain.TransactionEarning) {
		t.Fatalf("expected earning record, got %s", resp.Transactions[0].Type)
	}
	if !resp.Transactions[0].Amount.Equal(decimal.RequireFromString("80")) {
		t.Fatalf("expected vendor share amount 80, got %s", resp.Transactions[0].Amount)
	}
}

func TestPayoutHandler_Snapshot(t *testing.T) {
	orders := emptyOrderRepo()
	orders.lifetimeFn = func(ctx context.Context, vendorID string) (decimal.Decimal, error) {
		return decimal.RequireFromString("250"), nil
	}

	payouts := &payoutRepoStub{
		sumByStatusFn: func(ctx context.Context, vendorID string) (decimal.Decimal, decimal.Decimal, error) {
			return decimal.RequireFromString("50"), decimal.RequireFromString("100"), nil
		},
	}

	h := newPayoutHandler(orders, payouts, &vendorRepoStub{})

	req := authed(httptest.NewRequest(http.MethodGet, "/payouts", nil), "vendor-1")
	rec := httptest.NewRecorder()

	h.Snapshot(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.PayoutSnapshotResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.AvailableBalance.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("expected available balance 100, got %s", resp.AvailableBalance)
	}
}
