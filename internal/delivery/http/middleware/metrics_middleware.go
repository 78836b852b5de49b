package middleware

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "critique/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsMiddleware records per-route request counts and latencies and serves
// them from its own Prometheus registry.
type MetricsMiddleware struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewMetricsMiddleware creates the middleware and registers its collectors.
func NewMetricsMiddleware() *MetricsMiddleware {
	// A private registry keeps the global one clean
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "critique_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	durations := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "critique_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	registry.MustRegister(requests)
	registry.MustRegister(durations)

	return &MetricsMiddleware{
		registry:  registry,
		requests:  requests,
		durations: durations,
	}
}

// Handle measures the request. The path label uses the route template, not the
// raw URL, so IDs do not explode the cardinality.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The error handler has not run yet, so derive the status the
			// same way it will.
			var appErr domainerrors.AppError
			var httpErr *echo.HTTPError

			switch {
			case errors.As(err, &appErr):
				status = appErr.HTTPCode()
			case errors.As(err, &httpErr):
				status = httpErr.Code
			default:
				status = http.StatusInternalServerError
			}
		}

		method := c.Request().Method
		path := c.Path()

		m.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		m.durations.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler exposes the registry for the /metrics route.
func (m *MetricsMiddleware) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
