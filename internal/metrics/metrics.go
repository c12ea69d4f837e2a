// Package metrics exposes Prometheus counters for trip logging, weather fetches,
// recommendations and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mamadbah2/fishtracker/internal/domain/models"
)

const namespace = "fishtracker"

// Metrics owns its registry so tests can build independent instances.
type Metrics struct {
	registry        *prometheus.Registry
	tripsLogged     prometheus.Counter
	weatherFetches  *prometheus.CounterVec
	recommendations *prometheus.CounterVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		tripsLogged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trips_logged_total",
			Help:      "Total number of trips appended to session logs",
		}),
		weatherFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_fetches_total",
			Help:      "Weather snapshot fetches by result",
		}, []string{"result"}),
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Recommendations computed by outcome",
		}, []string{"outcome"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		m.tripsLogged,
		m.weatherFetches,
		m.recommendations,
		m.requestsTotal,
		m.requestDuration,
	)
	return m
}

// IncTripsLogged counts one appended trip.
func (m *Metrics) IncTripsLogged() {
	m.tripsLogged.Inc()
}

// ObserveWeatherFetch counts a weather fetch as ok or unavailable.
func (m *Metrics) ObserveWeatherFetch(ok bool) {
	result := "ok"
	if !ok {
		result = "unavailable"
	}
	m.weatherFetches.WithLabelValues(result).Inc()
}

// ObserveRecommendation counts a computed recommendation.
func (m *Metrics) ObserveRecommendation(outcome models.RecommendationOutcome) {
	m.recommendations.WithLabelValues(string(outcome)).Inc()
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the exposition format for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
