package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	ProviderRequests *prometheus.CounterVec   // endpoint, status
	ProviderLatency  *prometheus.HistogramVec // endpoint
	CacheLookups     *prometheus.CounterVec   // result: hit|miss|error

	ModeFailures       *prometheus.CounterVec // mode
	SynthesizedRoutes  *prometheus.CounterVec // mode
	GeometryFallbacks  *prometheus.CounterVec // reason: error|empty|invalid
	SearchDuration     prometheus.Histogram
	RoutesPerSearch    prometheus.Histogram
	HTTPRequestLatency *prometheus.HistogramVec // method, route, status
	EventsPublished    *prometheus.CounterVec   // result: ok|error
	PublishLatency     prometheus.Histogram
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_provider_requests_total",
			Help: "Provider HTTP attempts by endpoint and status (status=error for transport failures).",
		}, []string{"endpoint", "status"}),
		ProviderLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "travel_provider_request_duration_seconds",
			Help:    "Latency of provider HTTP attempts.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"endpoint"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_response_cache_lookups_total",
			Help: "Provider response cache lookups by result.",
		}, []string{"result"}),
		ModeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_route_mode_failures_total",
			Help: "Per-mode route fetches that produced no route option.",
		}, []string{"mode"}),
		SynthesizedRoutes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_synthesized_routes_total",
			Help: "Route options synthesized locally, by display mode.",
		}, []string{"mode"}),
		GeometryFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_geometry_fallbacks_total",
			Help: "Route lines drawn as straight fallbacks, by reason.",
		}, []string{"reason"}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "travel_search_duration_seconds",
			Help:    "End-to-end duration of route searches.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		RoutesPerSearch: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "travel_search_routes",
			Help:    "Number of route options returned per search.",
			Buckets: prometheus.LinearBuckets(0, 1, 7),
		}),
		HTTPRequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "travel_http_request_duration_seconds",
			Help:    "API request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_search_events_published_total",
			Help: "Search events published to NATS, by result.",
		}, []string{"result"}),
		PublishLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "travel_search_event_publish_seconds",
			Help:    "Latency of NATS publish calls.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
	}

	reg.MustRegister(
		c.ProviderRequests, c.ProviderLatency, c.CacheLookups,
		c.ModeFailures, c.SynthesizedRoutes, c.GeometryFallbacks,
		c.SearchDuration, c.RoutesPerSearch, c.HTTPRequestLatency,
		c.EventsPublished, c.PublishLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }

// Provider client hooks.

func (c *Collector) ProviderAttempt(endpoint string, status int, d time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	c.ProviderRequests.WithLabelValues(endpoint, label).Inc()
	c.ProviderLatency.WithLabelValues(endpoint).Observe(d.Seconds())
}

func (c *Collector) CacheLookup(result string) {
	c.CacheLookups.WithLabelValues(result).Inc()
}

// Service hooks.

func (c *Collector) ModeFetchFailed(mode string) {
	c.ModeFailures.WithLabelValues(mode).Inc()
}

func (c *Collector) RouteSynthesized(mode string) {
	c.SynthesizedRoutes.WithLabelValues(mode).Inc()
}

func (c *Collector) GeometryFallback(reason string) {
	c.GeometryFallbacks.WithLabelValues(reason).Inc()
}

func (c *Collector) SearchObserved(d time.Duration, routes int) {
	c.SearchDuration.Observe(d.Seconds())
	c.RoutesPerSearch.Observe(float64(routes))
}

// Event publisher hooks.

func (c *Collector) EventPublished(ok bool, d time.Duration) {
	result := "ok"
	if !ok {
		result = "error"
	}
	c.EventsPublished.WithLabelValues(result).Inc()
	c.PublishLatency.Observe(d.Seconds())
}

// API hooks.

func (c *Collector) HTTPObserved(method, route string, status int, d time.Duration) {
	c.HTTPRequestLatency.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
