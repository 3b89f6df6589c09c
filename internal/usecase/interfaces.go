package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oyedot/vendorhub/internal/domain"
)

// RateRepository defines data access for exchange rates.
type RateRepository interface {
	// List returns the full current rate snapshot.
	List(ctx context.Context) ([]domain.ExchangeRate, error)
}

// VendorRepository defines data access for vendor accounts.
type VendorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
	GetByEmail(ctx context.Context, email string) (*domain.Vendor, error)
}

// ProductRepository defines data access for the catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	List(ctx context.Context, vendorID string, limit, offset int) ([]*domain.Product, error)
	SaveConvertedPrices(ctx context.Context, productID string, prices map[string]domain.PriceSet, updatedAt time.Time) error
}

// OrderRepository defines data access for orders and line items.
type OrderRepository interface {
	VendorOrder(ctx context.Context, orderID, vendorID string) (*domain.VendorOrder, error)
	ItemsByOrder(ctx context.Context, orderID, vendorID string) ([]domain.OrderItem, error)
	ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.VendorOrder, error)
	ListCompletedByVendor(ctx context.Context, vendorID string) ([]domain.VendorOrder, error)
	ListRefundedByVendor(ctx context.Context, vendorID string) ([]domain.VendorOrder, error)
	ListPaidInWindow(ctx context.Context, vendorID string, from, to time.Time) ([]domain.Order, error)
	ListCompletedInWindow(ctx context.Context, vendorID string, from, to time.Time) ([]domain.VendorOrder, error)
	ItemsInWindow(ctx context.Context, vendorID string, from, to time.Time) ([]domain.OrderItem, error)
	LifetimeEarnings(ctx context.Context, vendorID string) (decimal.Decimal, error)
	UpdateFulfillmentTx(ctx context.Context, tx Transaction, orderID string, status domain.FulfillmentStatus, deliveredAt *time.Time, updatedAt time.Time) error
}

// PayoutRepository defines data access for payouts.
type PayoutRepository interface {
	Create(ctx context.Context, payout *domain.Payout) error
	ListByVendor(ctx context.Context, vendorID string) ([]domain.Payout, error)
	// SumByStatus returns the pending and completed payout totals.
	SumByStatus(ctx context.Context, vendorID string) (pending, paid decimal.Decimal, err error)
}

// EscrowRepository defines data access for escrow entries.
type EscrowRepository interface {
	CreateTx(ctx context.Context, tx Transaction, entry *domain.EscrowEntry) error
	ListByVendor(ctx context.Context, vendorID string, status domain.EscrowStatus) ([]domain.EscrowEntry, error)
	ListDue(ctx context.Context, asOf time.Time) ([]domain.EscrowEntry, error)
	MarkReleased(ctx context.Context, id string, releasedAt time.Time) error
}

// ReviewRepository defines data access for product reviews.
type ReviewRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.Review, error)
	SaveReply(ctx context.Context, id, reply string, repliedAt time.Time) error
}

// QuestionRepository defines data access for product questions.
type QuestionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Question, error)
	ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.Question, error)
	SaveAnswer(ctx context.Context, id, answer string, answeredAt time.Time) error
}

// TicketRepository defines data access for support tickets.
type TicketRepository interface {
	CreateTx(ctx context.Context, tx Transaction, ticket *domain.SupportTicket) error
	AddMessageTx(ctx context.Context, tx Transaction, msg *domain.TicketMessage) error
	AddMessage(ctx context.Context, msg *domain.TicketMessage) error
	GetByID(ctx context.Context, id string) (*domain.SupportTicket, error)
	ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.SupportTicket, error)
	ListMessages(ctx context.Context, ticketID string) ([]domain.TicketMessage, error)
	UpdateStatus(ctx context.Context, id string, status domain.TicketStatus, updatedAt time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Retrier retries an operation on transient failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
