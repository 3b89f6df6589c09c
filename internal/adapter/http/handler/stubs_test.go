package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oyedot/vendorhub/internal/adapter/http/middleware"
	"github.com/oyedot/vendorhub/internal/domain"
	"github.com/oyedot/vendorhub/internal/usecase"
)

// authed attaches a vendor identity the way the auth middleware does.
func authed(r *http.Request, vendorID string) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.VendorContextKey, vendorID)
	return r.WithContext(ctx)
}

type rateRepoStub struct {
	listFn func(ctx context.Context) ([]domain.ExchangeRate, error)
}

func (s *rateRepoStub) List(ctx context.Context) ([]domain.ExchangeRate, error) {
	return s.listFn(ctx)
}

type productRepoStub struct {
	createFn func(ctx context.Context, product *domain.Product) error
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	updateFn func(ctx context.Context, product *domain.Product) error
	listFn   func(ctx context.Context, vendorID string, limit, offset int) ([]*domain.Product, error)
	saveFn   func(ctx context.Context, productID string, prices map[string]domain.PriceSet, updatedAt time.Time) error
}

func (s *productRepoStub) Create(ctx context.Context, product *domain.Product) error {
	return s.createFn(ctx, product)
}

func (s *productRepoStub) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *productRepoStub) Update(ctx context.Context, product *domain.Product) error {
	return s.updateFn(ctx, product)
}

func (s *productRepoStub) List(ctx context.Context, vendorID string, limit, offset int) ([]*domain.Product, error) {
	return s.listFn(ctx, vendorID, limit, offset)
}

func (s *productRepoStub) SaveConvertedPrices(ctx context.Context, productID string, prices map[string]domain.PriceSet, updatedAt time.Time) error {
	return s.saveFn(ctx, productID, prices, updatedAt)
}

type orderRepoStub struct {
	vendorOrderFn        func(ctx context.Context, orderID, vendorID string) (*domain.VendorOrder, error)
	itemsByOrderFn       func(ctx context.Context, orderID, vendorID string) ([]domain.OrderItem, error)
	listByVendorFn       func(ctx context.Context, vendorID string, limit, offset int) ([]domain.VendorOrder, error)
	listCompletedFn      func(ctx context.Context, vendorID string) ([]domain.VendorOrder, error)
	listRefundedFn       func(ctx context.Context, vendorID string) ([]domain.VendorOrder, error)
	listPaidInWindowFn   func(ctx context.Context, vendorID string, from, to time.Time) ([]domain.Order, error)
	listCompletedInWinFn func(ctx context.Context, vendorID string, from, to time.Time) ([]domain.VendorOrder, error)
	itemsInWindowFn      func(ctx context.Context, vendorID string, from, to time.Time) ([]domain.OrderItem, error)
	lifetimeFn           func(ctx context.Context, vendorID string) (decimal.Decimal, error)
	updateFulfillmentFn  func(ctx context.Context, tx usecase.Transaction, orderID string, status domain.FulfillmentStatus, deliveredAt *time.Time, updatedAt time.Time) error
}

func (s *orderRepoStub) VendorOrder(ctx context.Context, orderID, vendorID string) (*domain.VendorOrder, error) {
	return s.vendorOrderFn(ctx, orderID, vendorID)
}

func (s *orderRepoStub) ItemsByOrder(ctx context.Context, orderID, vendorID string) ([]domain.OrderItem, error) {
	return s.itemsByOrderFn(ctx, orderID, vendorID)
}

func (s *orderRepoStub) ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.VendorOrder, error) {
	return s.listByVendorFn(ctx, vendorID, limit, offset)
}

func (s *orderRepoStub) ListCompletedByVendor(ctx context.Context, vendorID string) ([]domain.VendorOrder, error) {
	return s.listCompletedFn(ctx, vendorID)
}

func (s *orderRepoStub) ListRefundedByVendor(ctx context.Context, vendorID string) ([]domain.VendorOrder, error) {
	return s.listRefundedFn(ctx, vendorID)
}

func (s *orderRepoStub) ListPaidInWindow(ctx context.Context, vendorID string, from, to time.Time) ([]domain.Order, error) {
	return s.listPaidInWindowFn(ctx, vendorID, from, to)
}

func (s *orderRepoStub) ListCompletedInWindow(ctx context.Context, vendorID string, from, to time.Time) ([]domain.VendorOrder, error) {
	return s.listCompletedInWinFn(ctx, vendorID, from, to)
}

func (s *orderRepoStub) ItemsInWindow(ctx context.Context, vendorID string, from, to time.Time) ([]domain.OrderItem, error) {
	return s.itemsInWindowFn(ctx, vendorID, from, to)
}

func (s *orderRepoStub) LifetimeEarnings(ctx context.Context, vendorID string) (decimal.Decimal, error) {
	return s.lifetimeFn(ctx, vendorID)
}

func (s *orderRepoStub) UpdateFulfillmentTx(ctx context.Context, tx usecase.Transaction, orderID string, status domain.FulfillmentStatus, deliveredAt *time.Time, updatedAt time.Time) error {
	return s.updateFulfillmentFn(ctx, tx, orderID, status, deliveredAt, updatedAt)
}

type payoutRepoStub struct {
	createFn      func(ctx context.Context, payout *domain.Payout) error
	listFn        func(ctx context.Context, vendorID string) ([]domain.Payout, error)
	sumByStatusFn func(ctx context.Context, vendorID string) (decimal.Decimal, decimal.Decimal, error)
}

func (s *payoutRepoStub) Create(ctx context.Context, payout *domain.Payout) error {
	return s.createFn(ctx, payout)
}

func (s *payoutRepoStub) ListByVendor(ctx context.Context, vendorID string) ([]domain.Payout, error) {
	return s.listFn(ctx, vendorID)
}

func (s *payoutRepoStub) SumByStatus(ctx context.Context, vendorID string) (decimal.Decimal, decimal.Decimal, error) {
	return s.sumByStatusFn(ctx, vendorID)
}

type vendorRepoStub struct {
	getByIDFn    func(ctx context.Context, id string) (*domain.Vendor, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.Vendor, error)
}

func (s *vendorRepoStub) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	return s.getByIDFn(ctx, id)
}

func (s *vendorRepoStub) GetByEmail(ctx context.Context, email string) (*domain.Vendor, error) {
	return s.getByEmailFn(ctx, email)
}

type cacheStub struct {
	getFn func(ctx context.Context, key string) (string, error)
	setFn func(ctx context.Context, key, value string, ttl time.Duration) error
}

func (s *cacheStub) Get(ctx context.Context, key string) (string, error) {
	if s.getFn == nil {
		return "", nil
	}
	return s.getFn(ctx, key)
}

func (s *cacheStub) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if s.setFn == nil {
		return nil
	}
	return s.setFn(ctx, key, value, ttl)
}

func (s *cacheStub) Delete(ctx context.Context, key string) error { return nil }

type staticIDGen struct{ id string }

func (g *staticIDGen) Generate() string { return g.id }

type passRetrier struct{}

func (passRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}
