package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oyedot/vendorhub/internal/adapter/http/dto"
	"github.com/oyedot/vendorhub/internal/usecase"
)

// ProductHandler handles catalog HTTP requests.
type ProductHandler struct {
	catalogUC *usecase.CatalogUseCase
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalogUC *usecase.CatalogUseCase) *ProductHandler {
	return &ProductHandler{catalogUC: catalogUC}
}

// Create creates a new product.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	product, err := h.catalogUC.CreateProduct(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create product", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.ProductFromDomain(product))
}

// Get retrieves a product by ID.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	productID := chi.URLParam(r, "id")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "missing product ID", "")
		return
	}

	product, err := h.catalogUC.GetProduct(r.Context(), id, productID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get product", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ProductFromDomain(product))
}

// Update updates a product.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	productID := chi.URLParam(r, "id")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "missing product ID", "")
		return
	}

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	product, err := h.catalogUC.UpdateProduct(r.Context(), req.ToUseCaseInput(id, productID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update product", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ProductFromDomain(product))
}

// Archive hides a product from the storefront.
func (h *ProductHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	productID := chi.URLParam(r, "id")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "missing product ID", "")
		return
	}

	product, err := h.catalogUC.ArchiveProduct(r.Context(), id, productID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to archive product", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ProductFromDomain(product))
}

// List lists the vendor's products with pagination.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}

	products, err := h.catalogUC.ListProducts(r.Context(), usecase.ListProductsInput{
		VendorID: id,
		Limit:    parseIntQuery(r, "limit", 20),
		Offset:   parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list products", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ProductsFromDomain(products))
}
