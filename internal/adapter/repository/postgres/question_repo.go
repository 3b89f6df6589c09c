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

// QuestionRepository implements usecase.QuestionRepository.
type QuestionRepository struct {
	pool querier
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

const questionColumns = `id, vendor_id, product_id, customer, body, answer, answered_at, created_at`

// GetByID retrieves a question by ID.
func (r *QuestionRepository) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+questionColumns+` FROM questions WHERE id = $1`, id)

	question, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}

		return nil, err
	}

	return question, nil
}

const listQuestionsQuery = `
SELECT ` + questionColumns + `
FROM questions
WHERE vendor_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

// ListByVendor lists the vendor's product questions, newest first.
func (r *QuestionRepository) ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.Question, error) {
	rows, err := r.pool.Query(ctx, listQuestionsQuery, vendorID, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]domain.Question, 0)
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *question)
	}

	return questions, rows.Err()
}

const saveAnswerQuery = `
UPDATE questions
SET answer = $2, answered_at = $3
WHERE id = $1`

// SaveAnswer stores the vendor's answer on a question.
func (r *QuestionRepository) SaveAnswer(ctx context.Context, id, answer string, answeredAt time.Time) error {
	tag, err := r.pool.Exec(ctx, saveAnswerQuery, id, answer, timeToPgTimestamptz(answeredAt))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrQuestionNotFound
	}

	return nil
}

func scanQuestion(row pgx.Row) (*domain.Question, error) {
	var (
		question   domain.Question
		answeredAt pgtype.Timestamptz
		createdAt  pgtype.Timestamptz
	)

	err := row.Scan(&question.ID, &question.VendorID, &question.ProductID, &question.Customer,
		&question.Body, &question.Answer, &answeredAt, &createdAt)
	if err != nil {
		return nil, err
	}

	question.AnsweredAt = pgTimestamptzToTimePtr(answeredAt)
	question.CreatedAt = createdAt.Time

	return &question, nil
}
