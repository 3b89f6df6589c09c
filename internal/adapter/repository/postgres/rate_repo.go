package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oyedot/vendorhub/internal/domain"
)

// RateRepository implements usecase.RateRepository.
type RateRepository struct {
	pool querier
}

// NewRateRepository creates a new RateRepository.
func NewRateRepository(pool *pgxpool.Pool) *RateRepository {
	return &RateRepository{pool: pool}
}

const listRatesQuery = `
SELECT from_currency, to_currency, rate, updated_at
FROM exchange_rates
ORDER BY from_currency, to_currency`

// List returns the full current rate snapshot.
func (r *RateRepository) List(ctx context.Context) ([]domain.ExchangeRate, error) {
	rows, err := r.pool.Query(ctx, listRatesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []domain.ExchangeRate
	for rows.Next() {
		var (
			rate      domain.ExchangeRate
			value     pgtype.Numeric
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&rate.From, &rate.To, &value, &updatedAt); err != nil {
			return nil, err
		}
		rate.Rate = numericToDecimal(value)
		rate.UpdatedAt = updatedAt.Time
		rates = append(rates, rate)
	}

	return rates, rows.Err()
}
