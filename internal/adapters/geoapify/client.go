package geoapify

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"travel-compare-service/internal/platform/obs"
	"travel-compare-service/internal/ports"

	"github.com/sirupsen/logrus"
)

// RequestMetrics receives one call per HTTP attempt and per cache lookup.
type RequestMetrics interface {
	ProviderAttempt(endpoint string, status int, d time.Duration)
	CacheLookup(result string)
}

// GeoapifyClient implements RouteProvider, GeometryProvider and Geocoder on
// top of the Geoapify HTTP APIs.
//
// It coordinates:
//   - Waypoint and address normalization
//   - Optional response caching (raw bodies, keyed per mode and waypoints)
//   - External API calls with retry/backoff
//
// The client is safe for concurrent use.
type GeoapifyClient struct {
	session     *http.Client
	apiKey      string
	baseURL     string
	cache       ports.ResponseCache
	cacheTTL    time.Duration
	maxAttempts int
	backoff     time.Duration
	log         logrus.FieldLogger
	metrics     RequestMetrics
}

type Option func(*GeoapifyClient)

func WithBaseURL(u string) Option {
	return func(g *GeoapifyClient) { g.baseURL = strings.TrimRight(u, "/") }
}

func WithTimeout(d time.Duration) Option {
	return func(g *GeoapifyClient) { g.session.Timeout = d }
}

// WithRetry sets the total attempts per request and the initial backoff,
// which doubles after every retryable failure.
func WithRetry(attempts int, backoff time.Duration) Option {
	return func(g *GeoapifyClient) {
		if attempts > 0 {
			g.maxAttempts = attempts
		}
		g.backoff = backoff
	}
}

func WithCache(cache ports.ResponseCache, ttl time.Duration) Option {
	return func(g *GeoapifyClient) {
		g.cache = cache
		g.cacheTTL = ttl
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(g *GeoapifyClient) { g.log = log }
}

func WithMetrics(m RequestMetrics) Option {
	return func(g *GeoapifyClient) { g.metrics = m }
}

func NewGeoapifyClient(apiKey string, opts ...Option) (*GeoapifyClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("geoapify api key is empty")
	}

	client := &GeoapifyClient{
		session:     &http.Client{Timeout: 10 * time.Second},
		apiKey:      apiKey,
		baseURL:     "https://api.geoapify.com",
		cacheTTL:    time.Hour,
		maxAttempts: 3,
		backoff:     200 * time.Millisecond,
		log:         obs.Discard(),
		metrics:     nopMetrics{},
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *GeoapifyClient) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cached returns a previously stored body. Cache failures are logged and
// treated as misses.
func (g *GeoapifyClient) cached(ctx context.Context, key string) ([]byte, bool) {
	if g.cache == nil {
		return nil, false
	}

	body, err := g.cache.Get(ctx, key)
	switch {
	case err == nil:
		g.metrics.CacheLookup("hit")
		return body, true
	case errors.Is(err, ports.ErrCacheMiss):
		g.metrics.CacheLookup("miss")
	default:
		g.metrics.CacheLookup("error")
		g.log.WithError(err).WithField("key", key).Warn("response cache read failed")
	}
	return nil, false
}

func (g *GeoapifyClient) remember(ctx context.Context, key string, body []byte) {
	if g.cache == nil {
		return
	}
	if err := g.cache.Put(ctx, key, body, g.cacheTTL); err != nil {
		g.log.WithError(err).WithField("key", key).Warn("response cache write failed")
	}
}

type nopMetrics struct{}

func (nopMetrics) ProviderAttempt(string, int, time.Duration) {}
func (nopMetrics) CacheLookup(string)                         {}
