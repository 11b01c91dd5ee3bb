package services

import (
	"sync"
	"time"
	"travel-compare-service/internal/domain"
	"travel-compare-service/internal/ports"

	"github.com/paulmach/orb"
)

var (
	paris = domain.Location{Name: "Paris", Coordinates: domain.Coordinates{Lat: 48.8566, Lon: 2.3522}}
	rome  = domain.Location{Name: "Rome", Coordinates: domain.Coordinates{Lat: 41.9028, Lon: 12.4964}}
	lyon  = domain.Location{Name: "Lyon", Coordinates: domain.Coordinates{Lat: 45.7640, Lon: 4.8357}}
	macon = domain.Location{Name: "Mâcon", Coordinates: domain.Coordinates{Lat: 46.3069, Lon: 4.8287}}

	fixedNow = time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
)

func feature(seconds, meters float64, legs ...ports.RouteLeg) *ports.RouteResponse {
	return &ports.RouteResponse{Features: []ports.RouteFeature{{
		TimeSeconds:    seconds,
		DistanceMeters: meters,
		Legs:           legs,
		Geometry:       orb.LineString{{2.3522, 48.8566}, {12.4964, 41.9028}},
	}}}
}

// recordingMetrics counts service observations.
type recordingMetrics struct {
	mu          sync.Mutex
	failed      map[string]int
	synthesized map[string]int
	fallbacks   map[string]int
	searches    int
	lastRoutes  int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		failed:      map[string]int{},
		synthesized: map[string]int{},
		fallbacks:   map[string]int{},
	}
}

func (m *recordingMetrics) ModeFetchFailed(mode string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed[mode]++
}

func (m *recordingMetrics) RouteSynthesized(mode string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.synthesized[mode]++
}

func (m *recordingMetrics) GeometryFallback(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallbacks[reason]++
}

func (m *recordingMetrics) SearchObserved(_ time.Duration, routes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searches++
	m.lastRoutes = routes
}
