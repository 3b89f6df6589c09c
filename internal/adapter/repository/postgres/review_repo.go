package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oyedot/vendorhub/internal/domain"
)

// ReviewRepository implements usecase.ReviewRepository.
type ReviewRepository struct {
	pool querier
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

const reviewColumns = `id, vendor_id, product_id, order_id, customer, rating, title, body, reply, replied_at, created_at`

// GetByID retrieves a review by ID.
func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id)

	review, err := scanReview(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}

		return nil, err
	}

	return review, nil
}

const listReviewsQuery = `
SELECT ` + reviewColumns + `
FROM reviews
WHERE vendor_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

// ListByVendor lists the vendor's reviews, newest first.
func (r *ReviewRepository) ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, listReviewsQuery, vendorID, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *review)
	}

	return reviews, rows.Err()
}

const saveReplyQuery = `
UPDATE reviews
SET reply = $2, replied_at = $3
WHERE id = $1`

// SaveReply stores the vendor's public reply on a review.
func (r *ReviewRepository) SaveReply(ctx context.Context, id, reply string, repliedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, saveReplyQuery, id, reply, timeToPgTimestamptz(repliedAt))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrReviewNotFound
	}

	return nil
}

func scanReview(row pgx.Row) (*domain.Review, error) {
	var (
		review    domain.Review
		repliedAt pgtype.Timestamptz
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(&review.ID, &review.VendorID, &review.ProductID, &review.OrderID,
		&review.Customer, &review.Rating, &review.Title, &review.Body, &review.Reply,
		&repliedAt, &createdAt)
	if err != nil {
		return nil, err
	}

	review.RepliedAt = pgTimestamptzToTimePtr(repliedAt)
	review.CreatedAt = createdAt.Time

	return &review, nil
}
