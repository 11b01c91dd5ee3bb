package ports

import "travel-compare-service/internal/domain"

// OverlayID identifies a marker or line previously added to a MapSurface.
type OverlayID int

type LineStyle struct {
	Color     string  `json:"color"`
	Weight    int     `json:"weight"`
	Opacity   float64 `json:"opacity"`
	DashArray string  `json:"dashArray,omitempty"`
}

// Contract for the map the routes are drawn on. Coordinates are
// latitude-first domain values; surfaces never see provider order.
type MapSurface interface {
	AddLine(path []domain.Coordinates, style LineStyle) OverlayID
	AddMarker(at domain.Coordinates, popup string) OverlayID
	Remove(id OverlayID)
	FitBounds(southWest, northEast domain.Coordinates, paddingPx int)
	SetView(center domain.Coordinates, zoom int)
	// ResetView drops any bounds or center set earlier.
	ResetView()
}
