// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrisathi_http_requests_total",
			Help: "HTTP requests by method, route pattern and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nutrisathi_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Recommendations counts compositions; kind is thali or mood and
	// outcome is ok, empty or invalid.
	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrisathi_recommendations_total",
			Help: "Recommendations served by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	MealsLogged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nutrisathi_meals_logged_total",
			Help: "Meals logged by users",
		},
	)

	CalorieAlerts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrisathi_calorie_alerts_total",
			Help: "Calorie alerts raised by severity",
		},
		[]string{"severity"},
	)

	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrisathi_cache_requests_total",
			Help: "Calorie plan cache lookups by result",
		},
		[]string{"result"},
	)
)

const (
	KindThali = "thali"
	KindMood  = "mood"

	OutcomeOK      = "ok"
	OutcomeEmpty   = "empty"
	OutcomeInvalid = "invalid"
)

func RecordRecommendation(kind, outcome string) {
	Recommendations.WithLabelValues(kind, outcome).Inc()
}

func RecordMealLogged() {
	MealsLogged.Inc()
}

func RecordCalorieAlert(severity string) {
	CalorieAlerts.WithLabelValues(severity).Inc()
}

func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheRequests.WithLabelValues(result).Inc()
}

// Middleware records request count and latency labelled by chi's route
// pattern, so path parameters do not explode cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
