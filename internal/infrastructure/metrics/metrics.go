// Package metrics registers the application-level Prometheus metrics.
// HTTP request metrics live in the HTTP middleware; these counters track
// domain activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ConversionsTotal counts successful currency conversions by pair.
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendorhub_currency_conversions_total",
			Help: "Total number of successful currency conversions",
		},
		[]string{"from", "to"},
	)

	// RateCacheHits counts rate snapshot cache hits.
	RateCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendorhub_rate_cache_hits_total",
		Help: "Total number of rate snapshot cache hits",
	})

	// RateCacheMisses counts rate snapshot cache misses.
	RateCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendorhub_rate_cache_misses_total",
		Help: "Total number of rate snapshot cache misses",
	})

	// PayoutsRequested counts payout requests accepted.
	PayoutsRequested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendorhub_payouts_requested_total",
		Help: "Total number of payout requests accepted",
	})

	// EscrowReleased counts escrow entries released by the due sweep.
	EscrowReleased = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendorhub_escrow_released_total",
		Help: "Total number of escrow entries released",
	})
)
