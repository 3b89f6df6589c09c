package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/oyedot/vendorhub/internal/infrastructure/auth"
	"github.com/oyedot/vendorhub/internal/infrastructure/logging"
)

// ContextKey is the type for context keys
type ContextKey string

const (
	// VendorContextKey is the context key for the authenticated vendor ID
	VendorContextKey ContextKey = "vendor"
)

// AuthMiddleware creates an authentication middleware. Every dashboard
// route is vendor-scoped, so the verified vendor ID is placed on the
// request context for handlers and for log correlation.
func AuthMiddleware(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			// Parse Bearer token
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := jwtManager.Verify(parts[1])
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), VendorContextKey, claims.VendorID)
			ctx = context.WithValue(ctx, logging.VendorIDKey, claims.VendorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetVendorID extracts the authenticated vendor ID from context
func GetVendorID(ctx context.Context) (string, bool) {
	vendorID, ok := ctx.Value(VendorContextKey).(string)
	return vendorID, ok && vendorID != ""
}
