package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EscrowStatus tracks held vendor funds pending return-window expiry.
type EscrowStatus string

const (
	EscrowHeld     EscrowStatus = "held"
	EscrowReleased EscrowStatus = "released"
	EscrowRefunded EscrowStatus = "refunded"
)

// EscrowEntry holds a vendor's share of a delivered order until the
// customer return window expires.
type EscrowEntry struct {
	ID         string
	OrderID    string
	VendorID   string
	Amount     decimal.Decimal
	Currency   string
	Status     EscrowStatus
	HeldAt     time.Time
	ReleaseAt  time.Time
	ReleasedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DueForRelease reports whether a held entry's return window has expired.
func (e *EscrowEntry) DueForRelease(now time.Time) bool {
	return e.Status == EscrowHeld && !now.Before(e.ReleaseAt)
}

// NewEscrowEntry opens a held entry for a delivered order.
func NewEscrowEntry(id, vendorID string, vo VendorOrder, deliveredAt time.Time, returnWindow time.Duration) EscrowEntry {
	return EscrowEntry{
		ID:        id,
		OrderID:   vo.Order.ID,
		VendorID:  vendorID,
		Amount:    vo.ItemsTotal,
		Currency:  vo.Order.Currency,
		Status:    EscrowHeld,
		HeldAt:    deliveredAt,
		ReleaseAt: deliveredAt.Add(returnWindow),
		CreatedAt: deliveredAt,
		UpdatedAt: deliveredAt,
	}
}

// EscrowSummary aggregates a vendor's escrow position.
type EscrowSummary struct {
	HeldTotal     decimal.Decimal
	ReleasedTotal decimal.Decimal
	HeldCount     int
	ReleasedCount int
}

// SummarizeEscrow folds entries into held/released totals.
func SummarizeEscrow(entries []EscrowEntry) EscrowSummary {
	s := EscrowSummary{HeldTotal: decimal.Zero, ReleasedTotal: decimal.Zero}
	for _, e := range entries {
		switch e.Status {
		case EscrowHeld:
			s.HeldTotal = s.HeldTotal.Add(e.Amount)
			s.HeldCount++
		case EscrowReleased:
			s.ReleasedTotal = s.ReleasedTotal.Add(e.Amount)
			s.ReleasedCount++
		}
	}
	return s
}
