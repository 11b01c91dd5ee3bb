package ports

import (
	"context"
	"travel-compare-service/internal/domain"

	"github.com/paulmach/orb"
)

// Contract for retrieving a detailed line geometry between two points.
type GeometryProvider interface {
	// Return the path in provider order ([lon, lat] points). A nil line with
	// a nil error means the provider answered without geometry.
	LineGeometry(ctx context.Context, origin, destination domain.Coordinates, mode domain.GeometryMode) (orb.LineString, error)
}
