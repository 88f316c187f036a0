package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// LikeToggles counts like state transitions by action (activate, deactivate).
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_like_toggles_total",
		Help: "Total number of like toggle transitions by action",
	}, []string{"action"})

	// PostViews counts view-count increments performed by post fetches.
	PostViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_post_views_total",
		Help: "Total number of post view increments",
	})
)

// InitMetrics creates the Prometheus HTTP metrics collector for the service.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the Fiber handler that records per-request HTTP metrics.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
