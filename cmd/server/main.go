package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/oyedot/vendorhub/internal/adapter/http"
	"github.com/oyedot/vendorhub/internal/adapter/http/handler"
	"github.com/oyedot/vendorhub/internal/adapter/http/middleware"
	postgresRepo "github.com/oyedot/vendorhub/internal/adapter/repository/postgres"
	redisRepo "github.com/oyedot/vendorhub/internal/adapter/repository/redis"
	"github.com/oyedot/vendorhub/internal/infrastructure/auth"
	"github.com/oyedot/vendorhub/internal/infrastructure/config"
	"github.com/oyedot/vendorhub/internal/infrastructure/logging"
	"github.com/oyedot/vendorhub/internal/infrastructure/postgres"
	"github.com/oyedot/vendorhub/internal/infrastructure/redis"
	"github.com/oyedot/vendorhub/internal/usecase"
)

// escrowReleaseInterval is how often held escrow entries are checked
// for elapsed hold windows.
const escrowReleaseInterval = time.Hour

// rateLimiterSweepInterval bounds the memory held by the per-IP
// limiter map.
const rateLimiterSweepInterval = 10 * time.Minute

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Use case code logs through slog
	appLogger := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	slog.SetDefault(appLogger.Logger)

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if cfg.RunMigrations {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		log.Info().Msg("migrations applied")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	rateRepo := postgresRepo.NewRateRepository(pool)
	vendorRepo := postgresRepo.NewVendorRepository(pool)
	productRepo := postgresRepo.NewProductRepository(pool)
	orderRepo := postgresRepo.NewOrderRepository(pool)
	payoutRepo := postgresRepo.NewPayoutRepository(pool)
	escrowRepo := postgresRepo.NewEscrowRepository(pool)
	reviewRepo := postgresRepo.NewReviewRepository(pool)
	questionRepo := postgresRepo.NewQuestionRepository(pool)
	ticketRepo := postgresRepo.NewTicketRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	// Initialize use cases
	currencyUC := usecase.NewCurrencyUseCase(rateRepo, productRepo, cache, cfg.RatesCacheTTL, cfg.DefaultCurrency)
	vendorUC := usecase.NewVendorUseCase(vendorRepo)
	payoutUC := usecase.NewPayoutUseCase(orderRepo, payoutRepo, vendorRepo, idGen, retrier)
	catalogUC := usecase.NewCatalogUseCase(productRepo, idGen)
	orderUC := usecase.NewOrderUseCase(orderRepo, escrowRepo, txManager, idGen, retrier, cfg.ReturnWindow)
	escrowUC := usecase.NewEscrowUseCase(escrowRepo)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, questionRepo)
	supportUC := usecase.NewSupportUseCase(ticketRepo, txManager, idGen)
	analyticsUC := usecase.NewAnalyticsUseCase(orderRepo)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:      handler.NewAuthHandler(vendorUC, jwtManager),
		CurrencyHandler:  handler.NewCurrencyHandler(currencyUC),
		PayoutHandler:    handler.NewPayoutHandler(payoutUC),
		ProductHandler:   handler.NewProductHandler(catalogUC),
		OrderHandler:     handler.NewOrderHandler(orderUC),
		EscrowHandler:    handler.NewEscrowHandler(escrowUC),
		ReviewHandler:    handler.NewReviewHandler(reviewUC),
		SupportHandler:   handler.NewSupportHandler(supportUC),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		JWTManager:       jwtManager,
		IdempotencyStore: idempotencyStore,
		RateLimiter:      rateLimiter,
		Logger:           log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Background escrow release loop
	releaseCtx, stopRelease := context.WithCancel(ctx)
	defer stopRelease()
	go releaseEscrowLoop(releaseCtx, escrowUC)
	go sweepRateLimiter(releaseCtx, rateLimiter)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	stopRelease()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// releaseEscrowLoop periodically releases escrow entries whose hold
// window has elapsed.
func releaseEscrowLoop(ctx context.Context, escrowUC *usecase.EscrowUseCase) {
	ticker := time.NewTicker(escrowReleaseInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			released, err := escrowUC.ReleaseDue(ctx)
			if err != nil {
				log.Error().Err(err).Msg("escrow release pass failed")
				continue
			}
			if released > 0 {
				log.Info().Int("released", released).Msg("released due escrow entries")
			}
		}
	}
}

func sweepRateLimiter(ctx context.Context, rl *middleware.RateLimiter) {
	ticker := time.NewTicker(rateLimiterSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Reset()
		}
	}
}
