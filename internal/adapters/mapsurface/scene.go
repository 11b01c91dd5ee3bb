package mapsurface

import (
	"sort"
	"sync"
	"travel-compare-service/internal/domain"
	"travel-compare-service/internal/ports"
)

// Line is a polyline overlay as held by a Scene.
type Line struct {
	ID    ports.OverlayID      `json:"id"`
	Path  []domain.Coordinates `json:"path"`
	Style ports.LineStyle      `json:"style"`
}

// Marker is a point overlay with a popup label.
type Marker struct {
	ID    ports.OverlayID    `json:"id"`
	At    domain.Coordinates `json:"at"`
	Popup string             `json:"popup"`
}

// Viewport is either a bounds fit or a center and zoom.
type Viewport struct {
	SouthWest *domain.Coordinates `json:"southWest,omitempty"`
	NorthEast *domain.Coordinates `json:"northEast,omitempty"`
	PaddingPx int                 `json:"paddingPx,omitempty"`
	Center    *domain.Coordinates `json:"center,omitempty"`
	Zoom      int                 `json:"zoom,omitempty"`
}

// Snapshot is a point-in-time copy of a Scene, in insertion order.
type Snapshot struct {
	Markers  []Marker `json:"markers"`
	Lines    []Line   `json:"lines"`
	Viewport Viewport `json:"viewport"`
}

// Scene is an in-memory MapSurface. The HTTP API serializes its snapshot for
// a browser map client to draw.
type Scene struct {
	mu       sync.Mutex
	nextID   ports.OverlayID
	lines    map[ports.OverlayID]Line
	markers  map[ports.OverlayID]Marker
	viewport Viewport
}

func NewScene() *Scene {
	return &Scene{
		lines:   make(map[ports.OverlayID]Line),
		markers: make(map[ports.OverlayID]Marker),
	}
}

func (s *Scene) AddLine(path []domain.Coordinates, style ports.LineStyle) ports.OverlayID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.lines[s.nextID] = Line{
		ID:    s.nextID,
		Path:  append([]domain.Coordinates(nil), path...),
		Style: style,
	}
	return s.nextID
}

func (s *Scene) AddMarker(at domain.Coordinates, popup string) ports.OverlayID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.markers[s.nextID] = Marker{ID: s.nextID, At: at, Popup: popup}
	return s.nextID
}

// Remove drops the overlay with the given id. Unknown ids are ignored.
func (s *Scene) Remove(id ports.OverlayID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.lines, id)
	delete(s.markers, id)
}

func (s *Scene) FitBounds(southWest, northEast domain.Coordinates, paddingPx int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewport = Viewport{SouthWest: &southWest, NorthEast: &northEast, PaddingPx: paddingPx}
}

func (s *Scene) SetView(center domain.Coordinates, zoom int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewport = Viewport{Center: &center, Zoom: zoom}
}

func (s *Scene) ResetView() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewport = Viewport{}
}

func (s *Scene) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := Snapshot{
		Markers:  make([]Marker, 0, len(s.markers)),
		Lines:    make([]Line, 0, len(s.lines)),
		Viewport: s.viewport,
	}
	for _, m := range s.markers {
		out.Markers = append(out.Markers, m)
	}
	for _, l := range s.lines {
		out.Lines = append(out.Lines, l)
	}

	// IDs are allocated monotonically, so sorting by id restores insertion order.
	sort.Slice(out.Markers, func(i, j int) bool { return out.Markers[i].ID < out.Markers[j].ID })
	sort.Slice(out.Lines, func(i, j int) bool { return out.Lines[i].ID < out.Lines[j].ID })

	return out
}
