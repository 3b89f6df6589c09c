package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oyedot/vendorhub/internal/adapter/http/dto"
	"github.com/oyedot/vendorhub/internal/usecase"
)

// OrderHandler handles vendor order HTTP requests.
type OrderHandler struct {
	orderUC *usecase.OrderUseCase
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderUC *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// List lists the vendor's orders with pagination.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	orders, err := h.orderUC.ListOrders(r.Context(), usecase.ListOrdersInput{
		VendorID: id,
		Limit:    parseIntQuery(r, "limit", 20),
		Offset:   parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list orders", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OrdersFromDomain(orders))
}

// Get retrieves one of the vendor's orders with its line items.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "missing order ID", "")
		return
	}

	detail, err := h.orderUC.GetOrder(r.Context(), id, orderID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get order", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.OrderDetailFromUseCase(detail))
}

// UpdateFulfillment advances an order's fulfillment status.
func (h *OrderHandler) UpdateFulfillment(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "missing order ID", "")
		return
	}

	var req dto.UpdateFulfillmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	order, err := h.orderUC.UpdateFulfillment(r.Context(), req.ToUseCaseInput(id, orderID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update fulfillment", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.OrderFromDomain(order))
}
