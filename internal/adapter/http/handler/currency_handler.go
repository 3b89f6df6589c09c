package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/oyedot/vendorhub/internal/adapter/http/dto"
	"github.com/oyedot/vendorhub/internal/domain"
	"github.com/oyedot/vendorhub/internal/usecase"
)

// CurrencyHandler handles currency and conversion HTTP requests.
type CurrencyHandler struct {
	currencyUC *usecase.CurrencyUseCase
}

// NewCurrencyHandler creates a new CurrencyHandler.
func NewCurrencyHandler(currencyUC *usecase.CurrencyUseCase) *CurrencyHandler {
	return &CurrencyHandler{currencyUC: currencyUC}
}

// Info returns supported currencies and the current rate snapshot.
func (h *CurrencyHandler) Info(w http.ResponseWriter, r *http.Request) {
	info, err := h.currencyUC.GetRateInfo(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load rates", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CurrencyInfoFromUseCase(info))
}

// Convert converts a single amount via query parameters.
// GET /currency/convert?amount=100&from=USD&to=EUR
func (h *CurrencyHandler) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	amount, err := decimal.NewFromString(q.Get("amount"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	input := usecase.ConvertInput{
		Amount: amount,
		From:   q.Get("from"),
		To:     q.Get("to"),
	}

	h.convert(w, r, input)
}

// ConvertPost converts a single amount via a JSON body.
func (h *CurrencyHandler) ConvertPost(w http.ResponseWriter, r *http.Request) {
	var req dto.ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	h.convert(w, r, req.ToUseCaseInput())
}

func (h *CurrencyHandler) convert(w http.ResponseWriter, r *http.Request, input usecase.ConvertInput) {
	converted, err := h.currencyUC.Convert(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "conversion failed", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ConvertResponse{
		Amount:    input.Amount,
		From:      strings.ToUpper(strings.TrimSpace(input.From)),
		To:        strings.ToUpper(strings.TrimSpace(input.To)),
		Converted: converted,
	})
}

// ConvertPrices converts a product price set to multiple target
// currencies. Targets with no rate path are omitted from the result.
func (h *CurrencyHandler) ConvertPrices(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	var req dto.ConvertPricesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	prices, err := h.currencyUC.ConvertPrices(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "price conversion failed", err.Error())

		return
	}

	from := domain.NormalizeCurrencyCode(req.From)
	writeJSON(w, http.StatusOK, dto.ConvertedPricesFromDomain(from, prices))
}
