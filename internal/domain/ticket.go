package domain

import "time"

// TicketStatus tracks a support ticket's lifecycle.
type TicketStatus string

const (
	TicketOpen    TicketStatus = "open"
	TicketPending TicketStatus = "pending" // waiting on support
	TicketClosed  TicketStatus = "closed"
)

// TicketPriority orders the support queue.
type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityNormal TicketPriority = "normal"
	PriorityHigh   TicketPriority = "high"
)

// SupportTicket is a vendor support request with a message thread.
type SupportTicket struct {
	ID        string
	VendorID  string
	Subject   string
	Status    TicketStatus
	Priority  TicketPriority
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MessageAuthor identifies who wrote a ticket message.
type MessageAuthor string

const (
	AuthorVendor  MessageAuthor = "vendor"
	AuthorSupport MessageAuthor = "support"
)

// TicketMessage is one entry in a ticket thread.
type TicketMessage struct {
	ID        string
	TicketID  string
	Author    MessageAuthor
	Body      string
	CreatedAt time.Time
}

// CanReply reports whether the thread still accepts messages.
func (t *SupportTicket) CanReply() bool {
	return t.Status != TicketClosed
}
