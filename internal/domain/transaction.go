package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tags a normalized transaction record.
type TransactionType string

const (
	TransactionEarning          TransactionType = "earning"
	TransactionWithdrawal       TransactionType = "withdrawal"
	TransactionFailedWithdrawal TransactionType = "failed_withdrawal"
	TransactionRefund           TransactionType = "refund"
)

// TransactionFilterAll disables type filtering.
const TransactionFilterAll = "all"

// TransactionRecord is the normalized feed entry merged from orders,
// payouts and refunds. Amounts are signed: earnings positive,
// withdrawals and refunds negative. OrderID is set only when the record
// traces back to a specific order.
type TransactionRecord struct {
	ID          string
	Type        TransactionType
	Description string
	Amount      decimal.Decimal
	Currency    string
	Date        time.Time
	CreatedAt   time.Time // sort key
	Status      string
	OrderID     string
}

// EarningRecord maps a payment-completed order to a positive earning.
// The amount is the vendor's line-item share, not the order total.
func EarningRecord(vo VendorOrder) TransactionRecord {
	return TransactionRecord{
		ID:          "earning-" + vo.Order.ID,
		Type:        TransactionEarning,
		Description: "Order " + vo.Order.ID,
		Amount:      vo.ItemsTotal,
		Currency:    vo.Order.Currency,
		Date:        vo.Order.CreatedAt,
		CreatedAt:   vo.Order.CreatedAt,
		Status:      string(vo.Order.PaymentStatus),
		OrderID:     vo.Order.ID,
	}
}

// WithdrawalRecord maps a payout attempt to a negated withdrawal.
// Failed attempts become their own type so the feed can distinguish them.
func WithdrawalRecord(p Payout) TransactionRecord {
	rec := TransactionRecord{
		ID:        "payout-" + p.ID,
		Type:      TransactionWithdrawal,
		Amount:    p.Amount.Neg(),
		Currency:  p.Currency,
		Date:      p.CreatedAt,
		CreatedAt: p.CreatedAt,
		Status:    string(p.Status),
	}
	switch p.Status {
	case PayoutCompleted:
		rec.Description = "Payout to " + p.Account + " account"
	case PayoutFailed:
		rec.Type = TransactionFailedWithdrawal
		rec.Description = "Failed payout to " + p.Account + " account"
	default:
		rec.Description = "Pending payout request"
	}
	return rec
}

// RefundRecord maps a refunded order to a negated refund. The sort key
// is the order's UpdatedAt: refunds are dated by when the refund was
// recorded, not when the order was placed.
func RefundRecord(vo VendorOrder) TransactionRecord {
	return TransactionRecord{
		ID:          "refund-" + vo.Order.ID,
		Type:        TransactionRefund,
		Description: "Refund for order " + vo.Order.ID,
		Amount:      vo.ItemsTotal.Neg(),
		Currency:    vo.Order.Currency,
		Date:        vo.Order.UpdatedAt,
		CreatedAt:   vo.Order.UpdatedAt,
		Status:      string(PaymentRefunded),
		OrderID:     vo.Order.ID,
	}
}

// MergeTransactions concatenates the source lists and sorts the result
// descending by CreatedAt. Volumes are small, so a single global sort is
// used rather than a k-way merge of pre-sorted inputs.
func MergeTransactions(sources ...[]TransactionRecord) []TransactionRecord {
	var merged []TransactionRecord
	for _, src := range sources {
		merged = append(merged, src...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged
}

// FilterByType keeps records whose type matches filter, case-insensitive.
// An empty filter or "all" keeps everything.
func FilterByType(records []TransactionRecord, filter string) []TransactionRecord {
	if filter == "" || strings.EqualFold(filter, TransactionFilterAll) {
		return records
	}
	out := make([]TransactionRecord, 0, len(records))
	for _, r := range records {
		if strings.EqualFold(string(r.Type), filter) {
			out = append(out, r)
		}
	}
	return out
}

// Paginate slices records by page/limit and returns the slice together
// with the pre-pagination count.
func Paginate(records []TransactionRecord, page, limit int) ([]TransactionRecord, int) {
	total := len(records)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= total {
		return []TransactionRecord{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return records[start:end], total
}
