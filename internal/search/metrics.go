package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// cacheHits counts initial searches answered from the cache.
	cacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelfind_cache_hits_total",
			Help: "Total number of searches answered from the result cache",
		},
	)

	// apiRequests counts requests sent to the metadata API by mode and outcome.
	apiRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelfind_api_requests_total",
			Help: "Total number of metadata API requests",
		},
		[]string{"mode", "outcome"}, // outcome: "ok", "api_error", "transport_error"
	)

	// sharedFetches counts callers that joined an identical in-flight search.
	sharedFetches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelfind_shared_fetches_total",
			Help: "Total number of fetch results shared between identical concurrent searches",
		},
	)

	// suppressedFetches counts fetches dropped before reaching the API.
	suppressedFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelfind_suppressed_fetches_total",
			Help: "Total number of fetches suppressed before reaching the API",
		},
		[]string{"reason"}, // "in_flight", "exhausted"
	)

	// staleDiscarded counts results dropped because their query left the screen.
	staleDiscarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelfind_stale_results_total",
			Help: "Total number of results discarded because a newer query was active",
		},
		[]string{"mode"},
	)
)
