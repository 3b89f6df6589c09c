package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayoutStatus tracks the lifecycle of a payout attempt.
type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "pending"
	PayoutCompleted PayoutStatus = "completed"
	PayoutFailed    PayoutStatus = "failed"
)

// Payout is a single withdrawal attempt against a vendor's balance.
type Payout struct {
	ID          string
	VendorID    string
	Amount      decimal.Decimal
	Currency    string
	Status      PayoutStatus
	Account     string // masked destination account
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VendorTotals are the stored monetary totals for a vendor, in the
// vendor's ledger currency.
type VendorTotals struct {
	LifetimeEarnings decimal.Decimal
	PendingPayouts   decimal.Decimal
	TotalPaidOut     decimal.Decimal
}

// PayoutSnapshot is the derived balance view shown on the dashboard.
type PayoutSnapshot struct {
	AvailableBalance  decimal.Decimal
	PendingBalance    decimal.Decimal
	LifetimeEarnings  decimal.Decimal
	ThisMonthEarnings decimal.Decimal
	LastMonthEarnings decimal.Decimal
}

// ComputePayoutSnapshot derives the balance view from stored totals and
// the vendor's recent orders. AvailableBalance is not clamped: a negative
// value means payouts exceed recorded earnings and is surfaced as-is.
// Monthly sums are taken in the vendor's ledger currency without
// cross-currency normalization.
func ComputePayoutSnapshot(totals VendorTotals, orders []Order, now time.Time) PayoutSnapshot {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstOfLastMonth := firstOfMonth.AddDate(0, -1, 0)

	thisMonth := decimal.Zero
	lastMonth := decimal.Zero
	for _, o := range orders {
		if o.PaymentStatus != PaymentCompleted {
			continue
		}
		switch {
		case !o.CreatedAt.Before(firstOfMonth) && o.CreatedAt.Before(now):
			thisMonth = thisMonth.Add(o.Total)
		case !o.CreatedAt.Before(firstOfLastMonth) && o.CreatedAt.Before(firstOfMonth):
			lastMonth = lastMonth.Add(o.Total)
		}
	}

	return PayoutSnapshot{
		AvailableBalance:  totals.LifetimeEarnings.Sub(totals.PendingPayouts).Sub(totals.TotalPaidOut),
		PendingBalance:    totals.PendingPayouts,
		LifetimeEarnings:  totals.LifetimeEarnings,
		ThisMonthEarnings: thisMonth,
		LastMonthEarnings: lastMonth,
	}
}
