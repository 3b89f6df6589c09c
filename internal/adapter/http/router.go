package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/oyedot/vendorhub/internal/adapter/http/handler"
	"github.com/oyedot/vendorhub/internal/adapter/http/middleware"
	"github.com/oyedot/vendorhub/internal/infrastructure/auth"
	"github.com/oyedot/vendorhub/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler      *handler.AuthHandler
	CurrencyHandler  *handler.CurrencyHandler
	PayoutHandler    *handler.PayoutHandler
	ProductHandler   *handler.ProductHandler
	OrderHandler     *handler.OrderHandler
	EscrowHandler    *handler.EscrowHandler
	ReviewHandler    *handler.ReviewHandler
	SupportHandler   *handler.SupportHandler
	AnalyticsHandler *handler.AnalyticsHandler
	HealthHandler    *handler.HealthHandler

	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/login", cfg.AuthHandler.Login)
		r.Get("/currency", cfg.CurrencyHandler.Info)
		r.Get("/currency/convert", cfg.CurrencyHandler.Convert)
		r.Post("/currency/convert", cfg.CurrencyHandler.ConvertPost)

		// Vendor endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))

			// Idempotency middleware for mutating requests
			if cfg.IdempotencyStore != nil {
				idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
				r.Use(idempotencyMiddleware.Wrap)
			}

			r.Post("/currency/convert-prices", cfg.CurrencyHandler.ConvertPrices)

			// Products
			r.Route("/products", func(r chi.Router) {
				r.Post("/", cfg.ProductHandler.Create)
				r.Get("/", cfg.ProductHandler.List)
				r.Get("/{id}", cfg.ProductHandler.Get)
				r.Put("/{id}", cfg.ProductHandler.Update)
				r.Post("/{id}/archive", cfg.ProductHandler.Archive)
			})

			// Orders
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", cfg.OrderHandler.List)
				r.Get("/{id}", cfg.OrderHandler.Get)
				r.Put("/{id}/fulfillment", cfg.OrderHandler.UpdateFulfillment)
			})

			// Payouts and transactions
			r.Route("/payouts", func(r chi.Router) {
				r.Get("/", cfg.PayoutHandler.Snapshot)
				r.Get("/history", cfg.PayoutHandler.History)
				r.Post("/request", cfg.PayoutHandler.Request)
			})
			r.Get("/transactions", cfg.PayoutHandler.Transactions)

			// Escrow
			r.Route("/escrow", func(r chi.Router) {
				r.Get("/", cfg.EscrowHandler.List)
				r.Get("/summary", cfg.EscrowHandler.Summary)
				r.Post("/release-due", cfg.EscrowHandler.ReleaseDue)
			})

			// Reviews and questions
			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", cfg.ReviewHandler.ListReviews)
				r.Post("/{id}/reply", cfg.ReviewHandler.Reply)
			})
			r.Route("/questions", func(r chi.Router) {
				r.Get("/", cfg.ReviewHandler.ListQuestions)
				r.Post("/{id}/answer", cfg.ReviewHandler.Answer)
			})

			// Support tickets
			r.Route("/tickets", func(r chi.Router) {
				r.Post("/", cfg.SupportHandler.Create)
				r.Get("/", cfg.SupportHandler.List)
				r.Get("/{id}", cfg.SupportHandler.Get)
				r.Post("/{id}/reply", cfg.SupportHandler.Reply)
				r.Post("/{id}/close", cfg.SupportHandler.Close)
			})

			// Analytics
			r.Get("/analytics/sales", cfg.AnalyticsHandler.SalesSummary)
		})
	})

	return r
}
