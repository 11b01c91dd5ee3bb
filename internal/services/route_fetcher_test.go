package services

import (
	"context"
	"errors"
	"testing"
	"time"
	"travel-compare-service/internal/adapters/geoapify"
	"travel-compare-service/internal/domain"
	"travel-compare-service/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(p ports.RouteProvider, m Metrics) *RouteFetcher {
	f := NewRouteFetcher(p, nil, m)
	f.now = func() time.Time { return fixedNow }
	return f
}

func TestFetchAllKeepsSuccessfulModes(t *testing.T) {
	provider := geoapify.NewMockRouteProvider().
		WithRoute(domain.ProviderDrive, geoapify.MockRoute{Response: feature(3600, 100000)}).
		WithRoute(domain.ProviderTransit, geoapify.MockRoute{Err: errors.New("provider status 503")}).
		WithRoute(domain.ProviderWalk, geoapify.MockRoute{Response: feature(72000, 95000)})
	// bicycle has no canned answer and fails.

	m := newRecordingMetrics()
	routes := newTestFetcher(provider, m).FetchAll(context.Background(), paris, lyon)

	require.Len(t, routes, 2)
	assert.Equal(t, domain.ModeCar, routes[0].Mode)
	assert.Equal(t, 60, routes[0].DurationMinutes)
	assert.Equal(t, "€15-30", routes[0].Price)
	assert.Equal(t, domain.ModeWalk, routes[1].Mode)
	assert.Equal(t, 1200, routes[1].DurationMinutes)

	assert.Equal(t, 1, m.failed["transit"])
	assert.Equal(t, 1, m.failed["bicycle"])
	assert.ElementsMatch(t,
		[]string{"route:drive", "route:transit", "route:walk", "route:bicycle"},
		provider.Calls(),
	)
}

func TestFetchAllEmptyFeaturesIsFailure(t *testing.T) {
	provider := geoapify.NewMockRouteProvider().
		WithRoute(domain.ProviderDrive, geoapify.MockRoute{Response: &ports.RouteResponse{}}).
		WithRoute(domain.ProviderBicycle, geoapify.MockRoute{Response: feature(7200, 30000)})

	routes := newTestFetcher(provider, nil).FetchAll(context.Background(), paris, lyon)

	require.Len(t, routes, 1)
	assert.Equal(t, domain.ModeBike, routes[0].Mode)
	assert.Equal(t, "€2-3", routes[0].Price)
}

func TestFetchAllEveryModeFails(t *testing.T) {
	routes := newTestFetcher(geoapify.NewMockRouteProvider(), nil).FetchAll(context.Background(), paris, lyon)

	assert.NotNil(t, routes)
	assert.Empty(t, routes)
}

// slowProvider answers drive slowly and everything else immediately with an error.
type slowProvider struct {
	delay time.Duration
}

func (p slowProvider) Route(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	mode domain.ProviderMode,
) (*ports.RouteResponse, error) {
	if mode != domain.ProviderDrive {
		return nil, errors.New("unavailable")
	}
	time.Sleep(p.delay)
	return feature(60, 1000), nil
}

func TestFetchAllFailureDoesNotCancelSlowMode(t *testing.T) {
	routes := newTestFetcher(slowProvider{delay: 50 * time.Millisecond}, nil).
		FetchAll(context.Background(), paris, lyon)

	require.Len(t, routes, 1)
	assert.Equal(t, domain.ModeCar, routes[0].Mode)
}
