// Package metrics contains prometheus collectors of service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "calliope"

// nolint:gochecknoglobals
var (
	// StoreMutations counts state store mutations by operation and whether anything matched.
	StoreMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "mutations_total",
			Help:      "Total number of store mutations",
		},
		[]string{"operation", "matched"},
	)

	// DroppedEvents counts change events not delivered to slow subscribers.
	DroppedEvents = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "dropped_events_total",
			Help:      "Total number of change events dropped for slow subscribers",
		},
	)

	// AIRequestDuration observes simulated AI calls.
	AIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "ai",
			Name:      "request_duration_seconds",
			Help:      "AI request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)

	// HTTPRequests counts handled http requests.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of http requests",
		},
		[]string{"method", "route", "status"},
	)
)

// ObserveMutation ...
func ObserveMutation(operation string, matched bool) {
	StoreMutations.WithLabelValues(operation, strconv.FormatBool(matched)).Inc()
}

// ObserveAI ...
func ObserveAI(method string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}

	AIRequestDuration.WithLabelValues(method, status).Observe(time.Since(start).Seconds())
}

// Middleware counts requests by chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
	})
}
