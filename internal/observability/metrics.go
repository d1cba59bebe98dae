package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the fetch/render cycle.
type Metrics struct {
	FetchRequests *prometheus.CounterVec   // labels: provider, outcome={success,<error kind>}
	FetchDuration *prometheus.HistogramVec // labels: provider
	Cycles        *prometheus.CounterVec   // labels: provider, result={rendered,error}
	ServerReady   prometheus.Gauge
}

// NewMetrics creates and registers all collectors with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.FetchRequests,
		m.FetchDuration,
		m.Cycles,
		m.ServerReady,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid "already
// registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_glance",
			Name:      "fetch_requests_total",
			Help:      "Upstream fetch attempts by provider and outcome.",
		}, []string{"provider", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weather_glance",
			Name:      "fetch_duration_seconds",
			Help:      "Upstream request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider"}),
		Cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_glance",
			Name:      "cycles_total",
			Help:      "Completed request/render cycles by provider and result.",
		}, []string{"provider", "result"}),
		ServerReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_glance",
			Name:      "server_ready",
			Help:      "1 when the server is accepting traffic, 0 during shutdown.",
		}),
	}
}
