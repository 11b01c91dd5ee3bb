package geoapify

import (
	"context"
	"fmt"
	"sync"
	"travel-compare-service/internal/domain"
	"travel-compare-service/internal/ports"

	"github.com/paulmach/orb"
)

// MockRoute is a canned provider answer for one mode. Err takes precedence.
type MockRoute struct {
	Response *ports.RouteResponse
	Line     orb.LineString
	Err      error
}

// MockRouteProvider serves canned routes and geometries keyed by mode.
// Modes without an entry fail, which makes partial-failure scenarios easy to
// set up. It records every requested mode.
type MockRouteProvider struct {
	routes map[domain.ProviderMode]MockRoute
	lines  map[domain.GeometryMode]MockRoute

	mu    sync.Mutex
	calls []string
}

func NewMockRouteProvider() *MockRouteProvider {
	return &MockRouteProvider{
		routes: make(map[domain.ProviderMode]MockRoute),
		lines:  make(map[domain.GeometryMode]MockRoute),
	}
}

func (p *MockRouteProvider) WithRoute(mode domain.ProviderMode, r MockRoute) *MockRouteProvider {
	p.routes[mode] = r
	return p
}

func (p *MockRouteProvider) WithLine(mode domain.GeometryMode, r MockRoute) *MockRouteProvider {
	p.lines[mode] = r
	return p
}

func (p *MockRouteProvider) Route(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	mode domain.ProviderMode,
) (*ports.RouteResponse, error) {
	p.record("route:" + string(mode))

	r, ok := p.routes[mode]
	if !ok {
		return nil, fmt.Errorf("no canned route for mode %q", mode)
	}
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Response == nil || len(r.Response.Features) == 0 {
		return nil, ports.ErrNoFeatures
	}
	return r.Response, nil
}

func (p *MockRouteProvider) LineGeometry(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	mode domain.GeometryMode,
) (orb.LineString, error) {
	p.record("line:" + string(mode))

	r, ok := p.lines[mode]
	if !ok {
		return nil, fmt.Errorf("no canned geometry for mode %q", mode)
	}
	return r.Line, r.Err
}

// Calls returns the recorded requests, e.g. "route:drive" or "line:walk".
func (p *MockRouteProvider) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

func (p *MockRouteProvider) record(call string) {
	p.mu.Lock()
	p.calls = append(p.calls, call)
	p.mu.Unlock()
}
