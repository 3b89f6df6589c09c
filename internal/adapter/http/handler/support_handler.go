package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oyedot/vendorhub/internal/adapter/http/dto"
	"github.com/oyedot/vendorhub/internal/usecase"
)

// SupportHandler handles support ticket HTTP requests.
type SupportHandler struct {
	supportUC *usecase.SupportUseCase
}

// NewSupportHandler creates a new SupportHandler.
func NewSupportHandler(supportUC *usecase.SupportUseCase) *SupportHandler {
	return &SupportHandler{supportUC: supportUC}
}

// Create opens a new support ticket.
func (h *SupportHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	var req dto.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	ticket, err := h.supportUC.CreateTicket(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create ticket", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.TicketFromDomain(ticket))
}

// List lists the vendor's tickets, most recently updated first.
func (h *SupportHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	tickets, err := h.supportUC.ListTickets(r.Context(), id, parseIntQuery(r, "limit", 20), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list tickets", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TicketsFromDomain(tickets))
}

// Get retrieves a ticket with its message thread.
func (h *SupportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	ticketID := chi.URLParam(r, "id")
	if ticketID == "" {
		writeError(w, http.StatusBadRequest, "missing ticket ID", "")
		return
	}

	detail, err := h.supportUC.GetTicket(r.Context(), id, ticketID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get ticket", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TicketDetailFromUseCase(detail))
}

// Reply appends a vendor message to an open ticket.
func (h *SupportHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	ticketID := chi.URLParam(r, "id")
	if ticketID == "" {
		writeError(w, http.StatusBadRequest, "missing ticket ID", "")
		return
	}

	var req dto.TicketReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	msg, err := h.supportUC.Reply(r.Context(), id, ticketID, req.Body)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to reply to ticket", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.TicketMessageFromDomain(msg))
}

// Close closes a ticket.
func (h *SupportHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	ticketID := chi.URLParam(r, "id")
	if ticketID == "" {
		writeError(w, http.StatusBadRequest, "missing ticket ID", "")
		return
	}

	if err := h.supportUC.Close(r.Context(), id, ticketID); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to close ticket", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
