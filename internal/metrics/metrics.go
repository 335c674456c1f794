// Package metrics holds the prometheus collectors for search, the search
// index, component resolution and HTTP traffic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bsui"

var (
	SearchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_queries_total",
			Help:      "Total number of search queries",
		},
		[]string{"outcome"}, // "hit" / "empty"
	)

	SearchQueryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_query_duration_seconds",
			Help:      "Search query duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	SearchCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_cache_total",
			Help:      "Search result cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	IndexDocuments = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "search_index_documents",
			Help:      "Number of documents in the search index",
		},
		[]string{"type"},
	)

	IndexBuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_index_build_duration_seconds",
			Help:      "Search index build duration in seconds",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	ComponentRendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "component_renders_total",
			Help:      "Total number of component option resolutions",
		},
		[]string{"component", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		SearchQueriesTotal,
		SearchQueryDuration,
		SearchCacheTotal,
		IndexDocuments,
		IndexBuildDuration,
		ComponentRendersTotal,
	)
}
