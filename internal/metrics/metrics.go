// Package metrics holds the prometheus collectors of the catalog server.
//
// Collectors live in a private registry so that tests and several servers in
// one process do not collide on the global one.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "winecellar"

// Metrics is the set of collectors exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	// RequestsTotal counts handled requests by transport, route and status.
	RequestsTotal *prometheus.CounterVec

	// RequestDuration observes request latency in seconds by transport and route.
	RequestDuration *prometheus.HistogramVec

	// RateLimited counts requests rejected by the rate limiter.
	RateLimited prometheus.Counter

	// CatalogSize is the number of stored wines, refreshed by the stats worker.
	CatalogSize prometheus.Gauge
}

// New creates the collectors and registers them together with the Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Handled requests by transport, route and status.",
			},
			[]string{"transport", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"transport", "route"},
		),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
		CatalogSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_wines",
			Help:      "Number of wines in the catalog.",
		}),
	}

	m.registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.RateLimited,
		m.CatalogSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveRequest records one handled request.
func (m *Metrics) ObserveRequest(transport, route string, status int, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(transport, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(transport, route).Observe(elapsed.Seconds())
}

// Registry returns the registry the collectors are registered in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format. Response
// compression is left to the HTTP middleware chain.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry, DisableCompression: true})
}
