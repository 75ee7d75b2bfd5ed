package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds every Prometheus collector the API exports. A single
// instance is created in main and shared across handlers, so collectors
// register exactly once per process.
type Metrics struct {
	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlight        prometheus.Gauge

	UsersTotal    prometheus.Gauge
	ProductsTotal prometheus.Gauge
	ArticlesTotal prometheus.Gauge
}

// New registers the collectors on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the collectors on reg. Tests pass their own registry.
func NewWith(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "market_api_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "market_api_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "market_api_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		UsersTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "market_api_users_total",
				Help: "Number of registered users",
			},
		),
		ProductsTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "market_api_products_total",
				Help: "Number of products on the market",
			},
		),
		ArticlesTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "market_api_articles_total",
				Help: "Number of community articles",
			},
		),
	}

	reg.MustRegister(
		m.RequestCounter,
		m.RequestDuration,
		m.InFlight,
		m.UsersTotal,
		m.ProductsTotal,
		m.ArticlesTotal,
	)

	return m
}
