package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorCounters(t *testing.T) {
	c := NewCollector()

	c.ModeFetchFailed("transit")
	c.ModeFetchFailed("transit")
	c.GeometryFallback("error")
	c.RouteSynthesized("plane")
	c.ProviderAttempt("routing", 503, 20*time.Millisecond)
	c.ProviderAttempt("routing", 0, time.Millisecond)
	c.CacheLookup("hit")
	c.EventPublished(false, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.ModeFailures.WithLabelValues("transit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.GeometryFallbacks.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SynthesizedRoutes.WithLabelValues("plane")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ProviderRequests.WithLabelValues("routing", "503")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ProviderRequests.WithLabelValues("routing", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.CacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.EventsPublished.WithLabelValues("error")))
}

func TestCollectorHandlerExposesMetrics(t *testing.T) {
	c := NewCollector()
	c.SearchObserved(150*time.Millisecond, 3)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "travel_search_duration_seconds")
	assert.Contains(t, rec.Body.String(), "travel_search_routes")
}
