package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Catalog request metrics
var (
	CatalogRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_requests_total",
			Help: "Total number of requests sent to the TMDb catalog.",
		},
		[]string{"resource", "status"},
	)

	CatalogRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tmdb_request_duration_seconds",
			Help:    "Latency of requests sent to the TMDb catalog.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource"},
	)

	// IdentificationsTotal counts identify calls per entity kind and outcome.
	IdentificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_identifications_total",
			Help: "Total number of entity identifications.",
		},
		[]string{"kind", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		CatalogRequestsTotal,
		CatalogRequestDuration,
		IdentificationsTotal,
	)
}
