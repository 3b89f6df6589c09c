package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/oyedot/vendorhub/internal/domain"
)

// PayoutRepository implements usecase.PayoutRepository.
type PayoutRepository struct {
	pool querier
}

// NewPayoutRepository creates a new PayoutRepository.
func NewPayoutRepository(pool *pgxpool.Pool) *PayoutRepository {
	return &PayoutRepository{pool: pool}
}

const createPayoutQuery = `
INSERT INTO payouts (id, vendor_id, amount, currency, status, account, processed_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// Create creates a new payout.
func (r *PayoutRepository) Create(ctx context.Context, payout *domain.Payout) error {
	_, err := r.pool.Exec(ctx, createPayoutQuery,
		payout.ID,
		payout.VendorID,
		decimalToNumeric(payout.Amount),
		payout.Currency,
		string(payout.Status),
		payout.Account,
		timePtrToPgTimestamptz(payout.ProcessedAt),
		timeToPgTimestamptz(payout.CreatedAt),
		timeToPgTimestamptz(payout.UpdatedAt),
	)

	return err
}

const listPayoutsQuery = `
SELECT id, vendor_id, amount, currency, status, account, processed_at, created_at, updated_at
FROM payouts
WHERE vendor_id = $1
ORDER BY created_at DESC`

// ListByVendor lists the vendor's payouts, newest first.
func (r *PayoutRepository) ListByVendor(ctx context.Context, vendorID string) ([]domain.Payout, error) {
	rows, err := r.pool.Query(ctx, listPayoutsQuery, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payouts := make([]domain.Payout, 0)
	for rows.Next() {
		var (
			p           domain.Payout
			amount      pgtype.Numeric
			status      string
			processedAt pgtype.Timestamptz
			createdAt   pgtype.Timestamptz
			updatedAt   pgtype.Timestamptz
		)
		if err := rows.Scan(&p.ID, &p.VendorID, &amount, &p.Currency, &status, &p.Account,
			&processedAt, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		p.Amount = numericToDecimal(amount)
		p.Status = domain.PayoutStatus(status)
		p.ProcessedAt = pgTimestamptzToTimePtr(processedAt)
		p.CreatedAt = createdAt.Time
		p.UpdatedAt = updatedAt.Time
		payouts = append(payouts, p)
	}

	return payouts, rows.Err()
}

const sumPayoutsQuery = `
SELECT
  COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0),
  COALESCE(SUM(amount) FILTER (WHERE status = 'completed'), 0)
FROM payouts
WHERE vendor_id = $1`

// SumByStatus returns the pending and completed payout totals.
func (r *PayoutRepository) SumByStatus(ctx context.Context, vendorID string) (decimal.Decimal, decimal.Decimal, error) {
	var pending, paid pgtype.Numeric
	if err := r.pool.QueryRow(ctx, sumPayoutsQuery, vendorID).Scan(&pending, &paid); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(pending), numericToDecimal(paid), nil
}
