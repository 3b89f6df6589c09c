package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oyedot/vendorhub/internal/domain"
)

// VendorRepository implements usecase.VendorRepository.
type VendorRepository struct {
	pool querier
}

// NewVendorRepository creates a new VendorRepository.
func NewVendorRepository(pool *pgxpool.Pool) *VendorRepository {
	return &VendorRepository{pool: pool}
}

const vendorColumns = `id, name, email, password_hash, ledger_currency, payout_account, active, created_at, updated_at`

// GetByID retrieves a vendor by ID.
func (r *VendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id)

	return scanVendor(row)
}

// GetByEmail retrieves a vendor by email.
func (r *VendorRepository) GetByEmail(ctx context.Context, email string) (*domain.Vendor, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE email = $1`, email)

	return scanVendor(row)
}

func scanVendor(row pgx.Row) (*domain.Vendor, error) {
	var (
		v         domain.Vendor
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&v.ID, &v.Name, &v.Email, &v.PasswordHash, &v.LedgerCurrency, &v.PayoutAccount, &v.Active, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVendorNotFound
		}

		return nil, err
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}
