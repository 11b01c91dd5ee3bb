package mapsurface

import (
	"testing"
	"travel-compare-service/internal/domain"
	"travel-compare-service/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneAddRemoveSnapshot(t *testing.T) {
	s := NewScene()
	a := domain.Coordinates{Lat: 1, Lon: 2}
	b := domain.Coordinates{Lat: 3, Lon: 4}

	m1 := s.AddMarker(a, "Origin: A")
	l1 := s.AddLine([]domain.Coordinates{a, b}, ports.LineStyle{Color: "#f0ad4e", Weight: 5, Opacity: 0.7})
	l2 := s.AddLine([]domain.Coordinates{a, b}, ports.LineStyle{Color: "#777", DashArray: "5, 10"})
	s.FitBounds(a, b, 50)

	snap := s.Snapshot()
	require.Len(t, snap.Markers, 1)
	require.Len(t, snap.Lines, 2)
	assert.Equal(t, l1, snap.Lines[0].ID)
	assert.Equal(t, l2, snap.Lines[1].ID)
	assert.Equal(t, 50, snap.Viewport.PaddingPx)
	assert.Nil(t, snap.Viewport.Center)

	s.Remove(m1)
	s.Remove(l1)
	s.Remove(ports.OverlayID(999))
	s.SetView(a, 12)

	snap = s.Snapshot()
	assert.Empty(t, snap.Markers)
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, "5, 10", snap.Lines[0].Style.DashArray)
	assert.Equal(t, 12, snap.Viewport.Zoom)
	assert.Nil(t, snap.Viewport.SouthWest)

	s.ResetView()
	assert.Equal(t, Viewport{}, s.Snapshot().Viewport)
}

func TestSceneCopiesPaths(t *testing.T) {
	s := NewScene()
	path := []domain.Coordinates{{Lat: 1, Lon: 1}, {Lat: 2, Lon: 2}}
	s.AddLine(path, ports.LineStyle{})
	path[0].Lat = 50

	assert.Equal(t, 1.0, s.Snapshot().Lines[0].Path[0].Lat)
}
