package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oyedot/vendorhub/internal/domain"
	"github.com/oyedot/vendorhub/internal/usecase"
)

// EscrowRepository implements usecase.EscrowRepository.
type EscrowRepository struct {
	pool querier
}

// NewEscrowRepository creates a new EscrowRepository.
func NewEscrowRepository(pool *pgxpool.Pool) *EscrowRepository {
	return &EscrowRepository{pool: pool}
}

const escrowColumns = `id, order_id, vendor_id, amount, currency, status, held_at, release_at, released_at, created_at, updated_at`

const createEscrowQuery = `
INSERT INTO escrow_entries (` + escrowColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

// CreateTx creates an escrow entry inside a transaction.
func (r *EscrowRepository) CreateTx(ctx context.Context, tx usecase.Transaction, entry *domain.EscrowEntry) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, createEscrowQuery,
		entry.ID,
		entry.OrderID,
		entry.VendorID,
		decimalToNumeric(entry.Amount),
		entry.Currency,
		string(entry.Status),
		timeToPgTimestamptz(entry.HeldAt),
		timeToPgTimestamptz(entry.ReleaseAt),
		timePtrToPgTimestamptz(entry.ReleasedAt),
		timeToPgTimestamptz(entry.CreatedAt),
		timeToPgTimestamptz(entry.UpdatedAt),
	)

	return err
}

const listEscrowByVendorQuery = `
SELECT ` + escrowColumns + `
FROM escrow_entries
WHERE vendor_id = $1 AND ($2 = '' OR status = $2)
ORDER BY release_at`

// ListByVendor lists the vendor's escrow entries, optionally filtered by status.
func (r *EscrowRepository) ListByVendor(ctx context.Context, vendorID string, status domain.EscrowStatus) ([]domain.EscrowEntry, error) {
	rows, err := r.pool.Query(ctx, listEscrowByVendorQuery, vendorID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEscrowEntries(rows)
}

const listEscrowDueQuery = `
SELECT ` + escrowColumns + `
FROM escrow_entries
WHERE status = 'held' AND release_at <= $1
ORDER BY release_at`

// ListDue lists held entries whose return window has expired as of asOf.
func (r *EscrowRepository) ListDue(ctx context.Context, asOf time.Time) ([]domain.EscrowEntry, error) {
	rows, err := r.pool.Query(ctx, listEscrowDueQuery, timeToPgTimestamptz(asOf))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEscrowEntries(rows)
}

const markEscrowReleasedQuery = `
UPDATE escrow_entries
SET status = 'released', released_at = $2, updated_at = $2
WHERE id = $1 AND status = 'held'`

// MarkReleased transitions a held entry to released.
func (r *EscrowRepository) MarkReleased(ctx context.Context, id string, releasedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, markEscrowReleasedQuery, id, timeToPgTimestamptz(releasedAt))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrEscrowNotFound
	}

	return nil
}

func collectEscrowEntries(rows pgx.Rows) ([]domain.EscrowEntry, error) {
	entries := make([]domain.EscrowEntry, 0)
	for rows.Next() {
		var (
			e          domain.EscrowEntry
			amount     pgtype.Numeric
			status     string
			heldAt     pgtype.Timestamptz
			releaseAt  pgtype.Timestamptz
			releasedAt pgtype.Timestamptz
			createdAt  pgtype.Timestamptz
			updatedAt  pgtype.Timestamptz
		)
		if err := rows.Scan(&e.ID, &e.OrderID, &e.VendorID, &amount, &e.Currency, &status,
			&heldAt, &releaseAt, &releasedAt, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		e.Amount = numericToDecimal(amount)
		e.Status = domain.EscrowStatus(status)
		e.HeldAt = heldAt.Time
		e.ReleaseAt = releaseAt.Time
		e.ReleasedAt = pgTimestamptzToTimePtr(releasedAt)
		e.CreatedAt = createdAt.Time
		e.UpdatedAt = updatedAt.Time
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
