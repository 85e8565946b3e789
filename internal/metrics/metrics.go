package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the CRM services.
// Every method is safe to call on a nil *Metrics.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ContactMutations    *prometheus.CounterVec
	ViewCacheLookups    *prometheus.CounterVec
	RateLimitRejections prometheus.Counter
	OrphanedObjects     *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crm_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "crm_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ContactMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crm_contact_mutations_total",
			Help: "Committed contact mutations by operation",
		}, []string{"operation"}),
		ViewCacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crm_view_cache_lookups_total",
			Help: "View cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
		RateLimitRejections: factory.NewCounter(prometheus.CounterOpts{
			Name: "crm_ratelimit_rejections_total",
			Help: "Total number of write requests rejected by the rate limiter",
		}),
		OrphanedObjects: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crm_orphaned_objects_total",
			Help: "Orphaned storage objects by outcome (recorded, deleted, failed, abandoned)",
		}, []string{"outcome"}),
	}
}

// ObserveHTTPRequest records one served request
func (m *Metrics) ObserveHTTPRequest(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// IncrementContactMutation counts a committed contact mutation
func (m *Metrics) IncrementContactMutation(operation string) {
	if m == nil {
		return
	}
	m.ContactMutations.WithLabelValues(operation).Inc()
}

// IncrementViewCacheLookup counts a view cache lookup
func (m *Metrics) IncrementViewCacheLookup(result string) {
	if m == nil {
		return
	}
	m.ViewCacheLookups.WithLabelValues(result).Inc()
}

// IncrementRateLimitRejections counts a rejected request
func (m *Metrics) IncrementRateLimitRejections() {
	if m == nil {
		return
	}
	m.RateLimitRejections.Inc()
}

// AddOrphanedObjects counts orphaned objects reaching outcome
func (m *Metrics) AddOrphanedObjects(outcome string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.OrphanedObjects.WithLabelValues(outcome).Add(float64(n))
}
