package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "breed_registry"

// Metrics agrupa los collectors del servicio sobre un registry propio
// (un registry por router: evita pánicos por doble registro en tests).
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec

	prefixCollisions prometheus.Counter
	animalIDRetries  prometheus.Counter
	breedersByStatus *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		prefixCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "farm_prefix_collisions_total",
			Help:      "Farm prefix candidates rejected because another breeder holds them.",
		}),
		animalIDRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "animal_id_retries_total",
			Help:      "Animal inserts retried after an animal_id uniqueness conflict.",
		}),
		breedersByStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "breeder_status_transitions_total",
			Help:      "Breeder registrations and review decisions by resulting status.",
		}, []string{"status"}),
	}

	reg.MustRegister(m.requests, m.duration, m.prefixCollisions, m.animalIDRetries, m.breedersByStatus)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// PrefixCollision implementa identifiers.Observer.
func (m *Metrics) PrefixCollision(string) { m.prefixCollisions.Inc() }

// AnimalIDRetry implementa identifiers.Observer.
func (m *Metrics) AnimalIDRetry(string) { m.animalIDRetries.Inc() }

func (m *Metrics) BreederStatus(status string) {
	m.breedersByStatus.WithLabelValues(status).Inc()
}
