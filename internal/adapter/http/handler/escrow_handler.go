package handler

import (
	"net/http"

	"github.com/oyedot/vendorhub/internal/adapter/http/dto"
	"github.com/oyedot/vendorhub/internal/domain"
	"github.com/oyedot/vendorhub/internal/usecase"
)

// EscrowHandler handles escrow HTTP requests.
type EscrowHandler struct {
	escrowUC *usecase.EscrowUseCase
}

// NewEscrowHandler creates a new EscrowHandler.
func NewEscrowHandler(escrowUC *usecase.EscrowUseCase) *EscrowHandler {
	return &EscrowHandler{escrowUC: escrowUC}
}

// List lists the vendor's escrow entries, optionally filtered by status.
// GET /escrow?status=held
func (h *EscrowHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	status := domain.EscrowStatus(r.URL.Query().Get("status"))

	entries, err := h.escrowUC.ListEntries(r.Context(), id, status)
	if err != nil {
		statusCode := mapDomainError(err)
		writeError(w, statusCode, "failed to list escrow entries", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.EscrowEntriesFromDomain(entries))
}

// Summary returns held and released escrow totals for the vendor.
func (h *EscrowHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	summary, err := h.escrowUC.Summary(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load escrow summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EscrowSummaryFromDomain(summary))
}

// ReleaseDue releases all escrow entries whose hold has elapsed. The
// endpoint is meant for an operator or a scheduler, not the dashboard.
func (h *EscrowHandler) ReleaseDue(w http.ResponseWriter, r *http.Request) {
	released, err := h.escrowUC.ReleaseDue(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to release escrow", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"released": released})
}
