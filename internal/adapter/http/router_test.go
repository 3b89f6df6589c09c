package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/oyedot/vendorhub/internal/adapter/http/handler"
	apimiddleware "github.com/oyedot/vendorhub/internal/adapter/http/middleware"
	"github.com/oyedot/vendorhub/internal/domain"
	"github.com/oyedot/vendorhub/internal/infrastructure/auth"
	"github.com/oyedot/vendorhub/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_AuthGuardsVendorRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payouts/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
		cfg.JWTManager = jwtManager
	}))

	token, err := jwtManager.Generate(&domain.Vendor{ID: "vendor-1", Email: "v@example.com"})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	body := `{"amount":"25"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payouts/request", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/auth/login",
		"GET /api/v1/currency",
		"GET /api/v1/currency/convert",
		"POST /api/v1/products/",
		"GET /api/v1/products/{id}",
		"PUT /api/v1/orders/{id}/fulfillment",
		"GET /api/v1/payouts/",
		"POST /api/v1/payouts/request",
		"GET /api/v1/transactions",
		"GET /api/v1/escrow/summary",
		"POST /api/v1/reviews/{id}/reply",
		"POST /api/v1/tickets/",
		"GET /api/v1/analytics/sales",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	rateRepo := &stubRateRepository{}
	productRepo := &stubProductRepository{}
	orderRepo := &stubOrderRepository{}
	payoutRepo := &stubPayoutRepository{}
	vendorRepo := &stubVendorRepository{}
	escrowRepo := &stubEscrowRepository{}
	reviewRepo := &stubReviewRepository{}
	questionRepo := &stubQuestionRepository{}
	ticketRepo := &stubTicketRepository{}

	idGen := stubIDGenerator{}
	retrier := stubRetrier{}
	txManager := stubTransactionManager{}

	currencyUC := usecase.NewCurrencyUseCase(rateRepo, productRepo, stubCache{}, time.Minute, "USD")
	payoutUC := usecase.NewPayoutUseCase(orderRepo, payoutRepo, vendorRepo, idGen, retrier)
	catalogUC := usecase.NewCatalogUseCase(productRepo, idGen)
	orderUC := usecase.NewOrderUseCase(orderRepo, escrowRepo, txManager, idGen, retrier, 7*24*time.Hour)
	escrowUC := usecase.NewEscrowUseCase(escrowRepo)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, questionRepo)
	supportUC := usecase.NewSupportUseCase(ticketRepo, txManager, idGen)
	analyticsUC := usecase.NewAnalyticsUseCase(orderRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo)

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	cfg := RouterConfig{
		AuthHandler:      handler.NewAuthHandler(vendorUC, jwtManager),
		CurrencyHandler:  handler.NewCurrencyHandler(currencyUC),
		PayoutHandler:    handler.NewPayoutHandler(payoutUC),
		ProductHandler:   handler.NewProductHandler(catalogUC),
		OrderHandler:     handler.NewOrderHandler(orderUC),
		EscrowHandler:    handler.NewEscrowHandler(escrowUC),
		ReviewHandler:    handler.NewReviewHandler(reviewUC),
		SupportHandler:   handler.NewSupportHandler(supportUC),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsUC),
		HealthHandler:    &handler.HealthHandler{},
		JWTManager:       jwtManager,
		Logger:           zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubRateRepository struct{}

func (stubRateRepository) List(ctx context.Context) ([]domain.ExchangeRate, error) {
	return []domain.ExchangeRate{}, nil
}

type stubProductRepository struct{}

func (stubProductRepository) Create(ctx context.Context, product *domain.Product) error { return nil }

func (stubProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return &domain.Product{ID: id}, nil
}

func (stubProductRepository) Update(ctx context.Context, product *domain.Product) error { return nil }

func (stubProductRepository) List(ctx context.Context, vendorID string, limit, offset int) ([]*domain.Product, error) {
	return []*domain.Product{}, nil
}

func (stubProductRepository) SaveConvertedPrices(ctx context.Context, productID string, prices map[string]domain.PriceSet, updatedAt time.Time) error {
	return nil
}

type stubOrderRepository struct{}

func (stubOrderRepository) VendorOrder(ctx context.Context, orderID, vendorID string) (*domain.VendorOrder, error) {
	return &domain.VendorOrder{}, nil
}

func (stubOrderRepository) ItemsByOrder(ctx context.Context, orderID, vendorID string) ([]domain.OrderItem, error) {
	return []domain.OrderItem{}, nil
}

func (stubOrderRepository) ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.VendorOrder, error) {
	return []domain.VendorOrder{}, nil
}

func (stubOrderRepository) ListCompletedByVendor(ctx context.Context, vendorID string) ([]domain.VendorOrder, error) {
	return []domain.VendorOrder{}, nil
}

func (stubOrderRepository) ListRefundedByVendor(ctx context.Context, vendorID string) ([]domain.VendorOrder, error) {
	return []domain.VendorOrder{}, nil
}

func (stubOrderRepository) ListPaidInWindow(ctx context.Context, vendorID string, from, to time.Time) ([]domain.Order, error) {
	return []domain.Order{}, nil
}

func (stubOrderRepository) ListCompletedInWindow(ctx context.Context, vendorID string, from, to time.Time) ([]domain.VendorOrder, error) {
	return []domain.VendorOrder{}, nil
}

func (stubOrderRepository) ItemsInWindow(ctx context.Context, vendorID string, from, to time.Time) ([]domain.OrderItem, error) {
	return []domain.OrderItem{}, nil
}

func (stubOrderRepository) LifetimeEarnings(ctx context.Context, vendorID string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (stubOrderRepository) UpdateFulfillmentTx(ctx context.Context, tx usecase.Transaction, orderID string, status domain.FulfillmentStatus, deliveredAt *time.Time, updatedAt time.Time) error {
	return nil
}

type stubPayoutRepository struct{}

func (stubPayoutRepository) Create(ctx context.Context, payout *domain.Payout) error { return nil }

func (stubPayoutRepository) ListByVendor(ctx context.Context, vendorID string) ([]domain.Payout, error) {
	return []domain.Payout{}, nil
}

func (stubPayoutRepository) SumByStatus(ctx context.Context, vendorID string) (decimal.Decimal, decimal.Decimal, error) {
	return decimal.Zero, decimal.Zero, nil
}

type stubVendorRepository struct{}

func (stubVendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	return &domain.Vendor{ID: id, LedgerCurrency: "USD"}, nil
}

func (stubVendorRepository) GetByEmail(ctx context.Context, email string) (*domain.Vendor, error) {
	return &domain.Vendor{ID: "vendor-1", Email: email}, nil
}

type stubEscrowRepository struct{}

func (stubEscrowRepository) CreateTx(ctx context.Context, tx usecase.Transaction, entry *domain.EscrowEntry) error {
	return nil
}

func (stubEscrowRepository) ListByVendor(ctx context.Context, vendorID string, status domain.EscrowStatus) ([]domain.EscrowEntry, error) {
	return []domain.EscrowEntry{}, nil
}

func (stubEscrowRepository) ListDue(ctx context.Context, asOf time.Time) ([]domain.EscrowEntry, error) {
	return []domain.EscrowEntry{}, nil
}

func (stubEscrowRepository) MarkReleased(ctx context.Context, id string, releasedAt time.Time) error {
	return nil
}

type stubReviewRepository struct{}

func (stubReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	return &domain.Review{ID: id}, nil
}

func (stubReviewRepository) ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.Review, error) {
	return []domain.Review{}, nil
}

func (stubReviewRepository) SaveReply(ctx context.Context, id, reply string, repliedAt time.Time) error {
	return nil
}

type stubQuestionRepository struct{}

func (stubQuestionRepository) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	return &domain.Question{ID: id}, nil
}

func (stubQuestionRepository) ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.Question, error) {
	return []domain.Question{}, nil
}

func (stubQuestionRepository) SaveAnswer(ctx context.Context, id, answer string, answeredAt time.Time) error {
	return nil
}

type stubTicketRepository struct{}

func (stubTicketRepository) CreateTx(ctx context.Context, tx usecase.Transaction, ticket *domain.SupportTicket) error {
	return nil
}

func (stubTicketRepository) AddMessageTx(ctx context.Context, tx usecase.Transaction, msg *domain.TicketMessage) error {
	return nil
}

func (stubTicketRepository) AddMessage(ctx context.Context, msg *domain.TicketMessage) error {
	return nil
}

func (stubTicketRepository) GetByID(ctx context.Context, id string) (*domain.SupportTicket, error) {
	return &domain.SupportTicket{ID: id}, nil
}

func (stubTicketRepository) ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.SupportTicket, error) {
	return []domain.SupportTicket{}, nil
}

func (stubTicketRepository) ListMessages(ctx context.Context, ticketID string) ([]domain.TicketMessage, error) {
	return []domain.TicketMessage{}, nil
}

func (stubTicketRepository) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus, updatedAt time.Time) error {
	return nil
}

type stubCache struct{}

func (stubCache) Get(ctx context.Context, key string) (string, error) { return "", nil }

func (stubCache) Set(ctx context.Context, key, value string, ttl time.Duration) error { return nil }

func (stubCache) Delete(ctx context.Context, key string) error { return nil }

type stubIDGenerator struct{}

func (stubIDGenerator) Generate() string { return "id-1" }

type stubRetrier struct{}

func (stubRetrier) Retry(ctx context.Context, operation func() error) error { return operation() }

type stubTransaction struct{}

func (stubTransaction) Commit(ctx context.Context) error   { return nil }
func (stubTransaction) Rollback(ctx context.Context) error { return nil }

type stubTransactionManager struct{}

func (stubTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	return stubTransaction{}, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
