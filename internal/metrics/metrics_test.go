package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveHTTPRequest("GET", "/api/v1/contacts", "200", 10*time.Millisecond)
	m.IncrementContactMutation("create")
	m.IncrementContactMutation("create")
	m.IncrementViewCacheLookup("hit")
	m.IncrementRateLimitRejections()
	m.AddOrphanedObjects("recorded", 3)
	m.AddOrphanedObjects("recorded", 0)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/v1/contacts", "200")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.ContactMutations.WithLabelValues("create")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ViewCacheLookups.WithLabelValues("hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RateLimitRejections))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.OrphanedObjects.WithLabelValues("recorded")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", "200", time.Second)
		m.IncrementContactMutation("delete")
		m.IncrementViewCacheLookup("miss")
		m.IncrementRateLimitRejections()
		m.AddOrphanedObjects("failed", 1)
	})
}
