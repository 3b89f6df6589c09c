package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oyedot/vendorhub/internal/domain"
	"github.com/oyedot/vendorhub/internal/usecase"
)

// TicketRepository implements usecase.TicketRepository.
type TicketRepository struct {
	pool querier
}

// NewTicketRepository creates a new TicketRepository.
func NewTicketRepository(pool *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{pool: pool}
}

const ticketColumns = `id, vendor_id, subject, status, priority, created_at, updated_at`

const createTicketQuery = `
INSERT INTO support_tickets (` + ticketColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const addMessageQuery = `
INSERT INTO ticket_messages (id, ticket_id, author, body, created_at)
VALUES ($1, $2, $3, $4, $5)`

// CreateTx creates a ticket inside a transaction.
func (r *TicketRepository) CreateTx(ctx context.Context, tx usecase.Transaction, ticket *domain.SupportTicket) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, createTicketQuery,
		ticket.ID,
		ticket.VendorID,
		ticket.Subject,
		string(ticket.Status),
		string(ticket.Priority),
		timeToPgTimestamptz(ticket.CreatedAt),
		timeToPgTimestamptz(ticket.UpdatedAt),
	)

	return err
}

// AddMessageTx appends a message to a ticket thread inside a transaction.
func (r *TicketRepository) AddMessageTx(ctx context.Context, tx usecase.Transaction, msg *domain.TicketMessage) error {
	pgxTx := tx.(*Tx).PgxTx()

	return r.addMessage(ctx, pgxTx, msg)
}

// AddMessage appends a message to a ticket thread.
func (r *TicketRepository) AddMessage(ctx context.Context, msg *domain.TicketMessage) error {
	return r.addMessage(ctx, r.pool, msg)
}

func (r *TicketRepository) addMessage(ctx context.Context, q querier, msg *domain.TicketMessage) error {
	_, err := q.Exec(ctx, addMessageQuery,
		msg.ID,
		msg.TicketID,
		string(msg.Author),
		msg.Body,
		timeToPgTimestamptz(msg.CreatedAt),
	)

	return err
}

// GetByID retrieves a ticket by ID.
func (r *TicketRepository) GetByID(ctx context.Context, id string) (*domain.SupportTicket, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+ticketColumns+` FROM support_tickets WHERE id = $1`, id)

	ticket, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}

		return nil, err
	}

	return ticket, nil
}

const listTicketsQuery = `
SELECT ` + ticketColumns + `
FROM support_tickets
WHERE vendor_id = $1
ORDER BY updated_at DESC
LIMIT $2 OFFSET $3`

// ListByVendor lists the vendor's tickets by last activity.
func (r *TicketRepository) ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.SupportTicket, error) {
	rows, err := r.pool.Query(ctx, listTicketsQuery, vendorID, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.SupportTicket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, *ticket)
	}

	return tickets, rows.Err()
}

const listMessagesQuery = `
SELECT id, ticket_id, author, body, created_at
FROM ticket_messages
WHERE ticket_id = $1
ORDER BY created_at`

// ListMessages lists a ticket's thread in chronological order.
func (r *TicketRepository) ListMessages(ctx context.Context, ticketID string) ([]domain.TicketMessage, error) {
	rows, err := r.pool.Query(ctx, listMessagesQuery, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]domain.TicketMessage, 0)
	for rows.Next() {
		var (
			msg       domain.TicketMessage
			author    string
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&msg.ID, &msg.TicketID, &author, &msg.Body, &createdAt); err != nil {
			return nil, err
		}
		msg.Author = domain.MessageAuthor(author)
		msg.CreatedAt = createdAt.Time
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

const updateTicketStatusQuery = `
UPDATE support_tickets
SET status = $2, updated_at = $3
WHERE id = $1`

// UpdateStatus updates a ticket's status.
func (r *TicketRepository) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus, updatedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, updateTicketStatusQuery, id, string(status), timeToPgTimestamptz(updatedAt))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTicketNotFound
	}

	return nil
}

func scanTicket(row pgx.Row) (*domain.SupportTicket, error) {
	var (
		ticket    domain.SupportTicket
		status    string
		priority  string
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&ticket.ID, &ticket.VendorID, &ticket.Subject, &status, &priority, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	ticket.Status = domain.TicketStatus(status)
	ticket.Priority = domain.TicketPriority(priority)
	ticket.CreatedAt = createdAt.Time
	ticket.UpdatedAt = updatedAt.Time

	return &ticket, nil
}
