package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/oyedot/vendorhub/internal/domain"
)

// SupportUseCase handles vendor support tickets.
type SupportUseCase struct {
	ticketRepo TicketRepository
	txManager  TransactionManager
	idGen      IDGenerator
	now        func() time.Time
}

// NewSupportUseCase creates a new SupportUseCase.
func NewSupportUseCase(ticketRepo TicketRepository, txManager TransactionManager, idGen IDGenerator) *SupportUseCase {
	return &SupportUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		idGen:      idGen,
		now:        time.Now,
	}
}

// CreateTicketInput represents input for opening a ticket.
type CreateTicketInput struct {
	VendorID string
	Subject  string
	Priority domain.TicketPriority
	Body     string
}

// CreateTicket opens a ticket and stores its first message atomically.
func (uc *SupportUseCase) CreateTicket(ctx context.Context, input CreateTicketInput) (*domain.SupportTicket, error) {
	subject := strings.TrimSpace(input.Subject)
	body := strings.TrimSpace(input.Body)
	if subject == "" || body == "" {
		return nil, domain.ErrEmptyBody
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}

	now := uc.now().UTC()
	ticket := &domain.SupportTicket{
		ID:        uc.idGen.Generate(),
		VendorID:  input.VendorID,
		Subject:   subject,
		Status:    domain.TicketOpen,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
	message := &domain.TicketMessage{
		ID:        uc.idGen.Generate(),
		TicketID:  ticket.ID,
		Author:    domain.AuthorVendor,
		Body:      body,
		CreatedAt: now,
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.ticketRepo.CreateTx(ctx, tx, ticket); err != nil {
		return nil, err
	}
	if err := uc.ticketRepo.AddMessageTx(ctx, tx, message); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return ticket, nil
}

// ListTickets lists the vendor's tickets with pagination.
func (uc *SupportUseCase) ListTickets(ctx context.Context, vendorID string, limit, offset int) ([]domain.SupportTicket, error) {
	return uc.ticketRepo.ListByVendor(ctx, vendorID, clampLimit(limit, defaultPageSize), offset)
}

// TicketDetail pairs a ticket with its message thread.
type TicketDetail struct {
	Ticket   domain.SupportTicket
	Messages []domain.TicketMessage
}

// GetTicket retrieves one of the vendor's tickets with its thread.
func (uc *SupportUseCase) GetTicket(ctx context.Context, vendorID, ticketID string) (*TicketDetail, error) {
	ticket, err := uc.ownedTicket(ctx, vendorID, ticketID)
	if err != nil {
		return nil, err
	}

	messages, err := uc.ticketRepo.ListMessages(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	return &TicketDetail{Ticket: *ticket, Messages: messages}, nil
}

// Reply appends a vendor message to an open ticket and flips the status
// back to open if support had marked it pending.
func (uc *SupportUseCase) Reply(ctx context.Context, vendorID, ticketID, body string) (*domain.TicketMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, domain.ErrEmptyBody
	}

	ticket, err := uc.ownedTicket(ctx, vendorID, ticketID)
	if err != nil {
		return nil, err
	}
	if !ticket.CanReply() {
		return nil, domain.ErrTicketClosed
	}

	now := uc.now().UTC()
	message := &domain.TicketMessage{
		ID:        uc.idGen.Generate(),
		TicketID:  ticketID,
		Author:    domain.AuthorVendor,
		Body:      body,
		CreatedAt: now,
	}

	if err := uc.ticketRepo.AddMessage(ctx, message); err != nil {
		return nil, err
	}
	if ticket.Status != domain.TicketOpen {
		if err := uc.ticketRepo.UpdateStatus(ctx, ticketID, domain.TicketOpen, now); err != nil {
			return nil, err
		}
	}

	return message, nil
}

// Close closes one of the vendor's tickets.
func (uc *SupportUseCase) Close(ctx context.Context, vendorID, ticketID string) error {
	ticket, err := uc.ownedTicket(ctx, vendorID, ticketID)
	if err != nil {
		return err
	}
	if ticket.Status == domain.TicketClosed {
		return nil
	}

	return uc.ticketRepo.UpdateStatus(ctx, ticketID, domain.TicketClosed, uc.now().UTC())
}

func (uc *SupportUseCase) ownedTicket(ctx context.Context, vendorID, ticketID string) (*domain.SupportTicket, error) {
	ticket, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.VendorID != vendorID {
		return nil, domain.ErrTicketNotFound
	}
	return ticket, nil
}
