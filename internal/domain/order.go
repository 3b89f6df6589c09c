package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus tracks the payment lifecycle of an order.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// FulfillmentStatus tracks the shipping lifecycle of an order.
type FulfillmentStatus string

const (
	FulfillmentProcessing FulfillmentStatus = "processing"
	FulfillmentShipped    FulfillmentStatus = "shipped"
	FulfillmentDelivered  FulfillmentStatus = "delivered"
	FulfillmentCancelled  FulfillmentStatus = "cancelled"
)

// Order is a customer order. Total covers the whole order, which may
// span multiple vendors; a vendor's share is the sum of its line items.
type Order struct {
	ID                string
	CustomerID        string
	Total             decimal.Decimal
	Currency          string
	PaymentStatus     PaymentStatus
	FulfillmentStatus FulfillmentStatus
	DeliveredAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderItem is a single line of an order, owned by one vendor.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	VendorID  string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// VendorOrder pairs an order with the vendor's line-item total for it.
type VendorOrder struct {
	Order      Order
	ItemsTotal decimal.Decimal
}

// fulfillment transitions allowed from each status.
var fulfillmentTransitions = map[FulfillmentStatus][]FulfillmentStatus{
	FulfillmentProcessing: {FulfillmentShipped, FulfillmentCancelled},
	FulfillmentShipped:    {FulfillmentDelivered, FulfillmentCancelled},
	FulfillmentDelivered:  {},
	FulfillmentCancelled:  {},
}

// CanTransitionTo reports whether the fulfillment status may move to next.
func (s FulfillmentStatus) CanTransitionTo(next FulfillmentStatus) bool {
	for _, allowed := range fulfillmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether the status is a known fulfillment status.
func (s FulfillmentStatus) IsValid() bool {
	_, ok := fulfillmentTransitions[s]
	return ok
}

// SumItemSubtotals sums line-item subtotals, treating each as zero-safe.
func SumItemSubtotals(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}
	return total
}
