package ports

import (
	"context"
	"errors"
	"travel-compare-service/internal/domain"

	"github.com/paulmach/orb"
)

// ErrNoFeatures is returned when a provider answers successfully but with an
// empty feature list.
var ErrNoFeatures = errors.New("provider returned no route features")

// One leg of a provider route. From/To are empty when the provider does not
// name the leg endpoints.
type RouteLeg struct {
	From           string
	To             string
	TimeSeconds    float64
	DistanceMeters float64
}

// One route feature as returned by the provider, in provider units.
// Geometry keeps the provider's longitude-first coordinate order.
type RouteFeature struct {
	TimeSeconds    float64
	DistanceMeters float64
	Legs           []RouteLeg
	Geometry       orb.Geometry
}

// Decoded provider response. The first feature is the primary route; any
// further features are alternates.
type RouteResponse struct {
	Features []RouteFeature
}

// Contract for retrieving a route summary between two points for one mode.
type RouteProvider interface {
	// Return the provider's routes for the given mode. Implementations return
	// ErrNoFeatures rather than an empty response.
	Route(ctx context.Context, origin, destination domain.Coordinates, mode domain.ProviderMode) (*RouteResponse, error)
}
