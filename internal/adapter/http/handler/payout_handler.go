package handler

import (
	"encoding/json"
	"net/http"

	"github.com/oyedot/vendorhub/internal/adapter/http/dto"
	"github.com/oyedot/vendorhub/internal/usecase"
)

// PayoutHandler handles payout and transaction feed HTTP requests.
type PayoutHandler struct {
	payoutUC *usecase.PayoutUseCase
}

// NewPayoutHandler creates a new PayoutHandler.
func NewPayoutHandler(payoutUC *usecase.PayoutUseCase) *PayoutHandler {
	return &PayoutHandler{payoutUC: payoutUC}
}

// Snapshot returns the vendor's balance view.
func (h *PayoutHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	snap, err := h.payoutUC.Snapshot(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to load payout snapshot", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.PayoutSnapshotFromDomain(snap))
}

// History lists the vendor's payout attempts.
func (h *PayoutHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	payouts, err := h.payoutUC.ListPayouts(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list payouts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PayoutsFromDomain(payouts))
}

// Request creates a pending payout against the available balance.
func (h *PayoutHandler) Request(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	var req dto.RequestPayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	payout, err := h.payoutUC.RequestPayout(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to request payout", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.PayoutFromDomain(payout))
}

// Transactions returns a page of the merged transaction feed.
// GET /transactions?page=1&limit=10&type=earning
func (h *PayoutHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	out, err := h.payoutUC.Transactions(r.Context(), usecase.TransactionsInput{
		VendorID: id,
		Page:     parseIntQuery(r, "page", 1),
		Limit:    parseIntQuery(r, "limit", 10),
		Type:     r.URL.Query().Get("type"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionPageFromUseCase(out))
}
