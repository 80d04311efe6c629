package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the HTTP collectors of one server instance. Each instance
// owns its registry so several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RateLimitedTotal prometheus.Counter
	CountryLookups   *prometheus.CounterVec
	CountriesLoaded  prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crmkit_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "crmkit_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		RateLimitedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "crmkit_http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		}),
		CountryLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crmkit_country_lookups_total",
			Help: "Country lookups by result",
		}, []string{"result"}),
		CountriesLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Name: "crmkit_countries_loaded",
			Help: "Number of countries in the active lookup table",
		}),
	}
}

func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Metrics) IncrementRateLimited() {
	m.RateLimitedTotal.Inc()
}

func (m *Metrics) RecordCountryLookup(found bool) {
	result := "miss"
	if found {
		result = "hit"
	}
	m.CountryLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) SetCountriesLoaded(count int) {
	m.CountriesLoaded.Set(float64(count))
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
