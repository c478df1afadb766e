package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RateLimitExceededTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_exceeded_total",
			Help: "Requests rejected by the per-client rate limiter",
		},
		[]string{"method", "route"},
	)

	// TrackedClients число клиентов с живым ведром
	TrackedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_tracked_clients",
			Help: "Number of client keys currently holding a token bucket",
		},
	)
)
