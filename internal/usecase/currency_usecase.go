package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oyedot/vendorhub/internal/domain"
	"github.com/oyedot/vendorhub/internal/infrastructure/metrics"
)

const rateSnapshotCacheKey = "rates:snapshot"

// CurrencyUseCase handles exchange rate lookup and conversion.
type CurrencyUseCase struct {
	rateRepo        RateRepository
	productRepo     ProductRepository
	cache           Cache
	cacheTTL        time.Duration
	defaultCurrency string
	now             func() time.Time
}

// NewCurrencyUseCase creates a new CurrencyUseCase.
func NewCurrencyUseCase(rateRepo RateRepository, productRepo ProductRepository, cache Cache, cacheTTL time.Duration, defaultCurrency string) *CurrencyUseCase {
	return &CurrencyUseCase{
		rateRepo:        rateRepo,
		productRepo:     productRepo,
		cache:           cache,
		cacheTTL:        cacheTTL,
		defaultCurrency: defaultCurrency,
		now:             time.Now,
	}
}

// cachedRate is the cache wire form of an exchange rate.
type cachedRate struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Rate      decimal.Decimal `json:"rate"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// RateTable returns the current rate table, served from the cache when
// the snapshot is fresh. A stale or unreadable cache entry falls back to
// the repository; the refreshed snapshot is re-cached best effort.
func (uc *CurrencyUseCase) RateTable(ctx context.Context) (*domain.RateTable, error) {
	if cached, err := uc.cache.Get(ctx, rateSnapshotCacheKey); err == nil && cached != "" {
		var rates []cachedRate
		if err := json.Unmarshal([]byte(cached), &rates); err == nil {
			metrics.RateCacheHits.Inc()
			return domain.NewRateTable(fromCachedRates(rates)), nil
		}
	}
	metrics.RateCacheMisses.Inc()

	rates, err := uc.rateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(toCachedRates(rates)); err == nil {
		if err := uc.cache.Set(ctx, rateSnapshotCacheKey, string(payload), uc.cacheTTL); err != nil {
			slog.Warn("failed to cache rate snapshot", "error", err)
		}
	}

	return domain.NewRateTable(rates), nil
}

// RateInfo is the public currency metadata view.
type RateInfo struct {
	SupportedCurrencies []string
	DefaultCurrency     string
	ExchangeRates       []domain.ExchangeRate
	LastUpdated         time.Time
}

// GetRateInfo returns supported currencies and the current rate snapshot.
func (uc *CurrencyUseCase) GetRateInfo(ctx context.Context) (*RateInfo, error) {
	table, err := uc.RateTable(ctx)
	if err != nil {
		return nil, err
	}

	supported := domain.SupportedCurrencies()
	sort.Strings(supported)

	rates := table.Rates()
	sort.Slice(rates, func(i, j int) bool {
		if rates[i].From != rates[j].From {
			return rates[i].From < rates[j].From
		}
		return rates[i].To < rates[j].To
	})

	return &RateInfo{
		SupportedCurrencies: supported,
		DefaultCurrency:     uc.defaultCurrency,
		ExchangeRates:       rates,
		LastUpdated:         table.LastUpdated(),
	}, nil
}

// ConvertInput represents input for a single-amount conversion.
type ConvertInput struct {
	Amount decimal.Decimal
	From   string
	To     string
}

// Convert converts a single amount between two currencies. A missing
// rate path surfaces as domain.ErrRateNotFound; fallback behavior is
// the caller's decision.
func (uc *CurrencyUseCase) Convert(ctx context.Context, input ConvertInput) (decimal.Decimal, error) {
	from := domain.NormalizeCurrencyCode(input.From)
	to := domain.NormalizeCurrencyCode(input.To)

	if err := domain.ValidateCurrencyCode(from); err != nil {
		return decimal.Decimal{}, err
	}
	if err := domain.ValidateCurrencyCode(to); err != nil {
		return decimal.Decimal{}, err
	}

	table, err := uc.RateTable(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}

	converted, err := table.Convert(input.Amount, from, to)
	if err != nil {
		return decimal.Decimal{}, err
	}

	metrics.ConversionsTotal.WithLabelValues(from, to).Inc()

	return converted, nil
}

// ConvertPricesInput represents input for a batch price conversion.
// ProductID is optional; when set, the converted prices are persisted
// against the product after an ownership check.
type ConvertPricesInput struct {
	ProductID string
	VendorID  string
	Prices    domain.PriceSet
	From      string
	Targets   []string
}

// ConvertPrices converts a price set to each target currency. A target
// with no resolvable rate path is omitted from the result so one missing
// rate does not block converting to the others.
func (uc *CurrencyUseCase) ConvertPrices(ctx context.Context, input ConvertPricesInput) (map[string]domain.PriceSet, error) {
	from := domain.NormalizeCurrencyCode(input.From)
	if err := domain.ValidateCurrencyCode(from); err != nil {
		return nil, err
	}

	table, err := uc.RateTable(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]domain.PriceSet, len(input.Targets))
	for _, target := range input.Targets {
		to := domain.NormalizeCurrencyCode(target)
		if err := domain.ValidateCurrencyCode(to); err != nil {
			continue
		}
		converted, err := table.ConvertPriceSet(input.Prices, from, to)
		if err != nil {
			if errors.Is(err, domain.ErrRateNotFound) {
				continue
			}
			return nil, err
		}
		result[to] = converted
		metrics.ConversionsTotal.WithLabelValues(from, to).Inc()
	}

	if input.ProductID != "" {
		product, err := uc.productRepo.GetByID(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}
		if product.VendorID != input.VendorID {
			return nil, domain.ErrProductNotFound
		}
		if err := uc.productRepo.SaveConvertedPrices(ctx, input.ProductID, result, uc.now().UTC()); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func toCachedRates(rates []domain.ExchangeRate) []cachedRate {
	out := make([]cachedRate, len(rates))
	for i, r := range rates {
		out[i] = cachedRate{From: r.From, To: r.To, Rate: r.Rate, UpdatedAt: r.UpdatedAt}
	}
	return out
}

func fromCachedRates(rates []cachedRate) []domain.ExchangeRate {
	out := make([]domain.ExchangeRate, len(rates))
	for i, r := range rates {
		out[i] = domain.ExchangeRate{From: r.From, To: r.To, Rate: r.Rate, UpdatedAt: r.UpdatedAt}
	}
	return out
}
