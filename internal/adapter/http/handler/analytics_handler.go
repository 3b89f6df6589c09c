package handler

import (
	"net/http"
	"time"

	"github.com/oyedot/vendorhub/internal/adapter/http/dto"
	"github.com/oyedot/vendorhub/internal/usecase"
)

// AnalyticsHandler handles sales analytics HTTP requests.
type AnalyticsHandler struct {
	analyticsUC *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsUC *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: analyticsUC}
}

// SalesSummary aggregates completed orders in a time window.
// GET /analytics/sales?from=2026-01-01T00:00:00Z&to=2026-02-01T00:00:00Z
// An omitted window defaults to the last thirty days.
func (h *AnalyticsHandler) SalesSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	from, err := parseTimeQuery(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from timestamp", err.Error())
		return
	}

	to, err := parseTimeQuery(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to timestamp", err.Error())
		return
	}

	summary, err := h.analyticsUC.SalesSummary(r.Context(), usecase.SalesSummaryInput{
		VendorID: id,
		From:     from,
		To:       to,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build sales summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SalesSummaryFromDomain(summary))
}

func parseTimeQuery(r *http.Request, key string) (time.Time, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, val)
}
