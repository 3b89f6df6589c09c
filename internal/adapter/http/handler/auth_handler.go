package handler

import (
	"encoding/json"
	"net/http"

	"github.com/oyedot/vendorhub/internal/adapter/http/dto"
	"github.com/oyedot/vendorhub/internal/infrastructure/auth"
	"github.com/oyedot/vendorhub/internal/usecase"
)

// AuthHandler handles vendor authentication requests.
type AuthHandler struct {
	vendorUC   *usecase.VendorUseCase
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(vendorUC *usecase.VendorUseCase, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		vendorUC:   vendorUC,
		jwtManager: jwtManager,
	}
}

// Login authenticates a vendor and issues a JWT.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	vendor, err := h.vendorUC.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "login failed", err.Error())

		return
	}

	token, err := h.jwtManager.Generate(vendor)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token:  token,
		Vendor: dto.VendorFromDomain(vendor),
	})
}
