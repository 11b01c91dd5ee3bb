package geoapify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"travel-compare-service/internal/domain"
	"travel-compare-service/internal/platform/obs"
	"travel-compare-service/internal/ports"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const routingPath = "/v1/routing"

type routingResponse struct {
	Features []routingFeature `json:"features"`
}

type routingFeature struct {
	Properties routingProperties `json:"properties"`
	Geometry   json.RawMessage   `json:"geometry"`
}

type routingProperties struct {
	Distance *float64     `json:"distance"`
	Time     *float64     `json:"time"`
	Legs     []routingLeg `json:"legs"`
}

type routingLeg struct {
	Distance float64         `json:"distance"`
	Time     float64         `json:"time"`
	From     json.RawMessage `json:"from"`
	To       json.RawMessage `json:"to"`
}

// Route fetches the provider's routes between two points for one mode.
func (g *GeoapifyClient) Route(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	mode domain.ProviderMode,
) (_ *ports.RouteResponse, err error) {
	defer obs.Time(ctx, g.log, "geoapify.Route."+string(mode))(&err)

	rr, err := g.routing(ctx, origin, destination, string(mode))
	if err != nil {
		return nil, err
	}

	if len(rr.Features) == 0 {
		return nil, ports.ErrNoFeatures
	}

	out := &ports.RouteResponse{Features: make([]ports.RouteFeature, 0, len(rr.Features))}
	for i, f := range rr.Features {
		if f.Properties.Time == nil || f.Properties.Distance == nil {
			return nil, fmt.Errorf("routing feature %d: missing time or distance", i)
		}

		legs := make([]ports.RouteLeg, 0, len(f.Properties.Legs))
		for _, l := range f.Properties.Legs {
			legs = append(legs, ports.RouteLeg{
				From:           legName(l.From),
				To:             legName(l.To),
				TimeSeconds:    l.Time,
				DistanceMeters: l.Distance,
			})
		}

		// Summaries do not depend on geometry; a bad geometry only costs the line.
		geom, gerr := decodeGeometry(f.Geometry)
		if gerr != nil {
			g.log.WithError(gerr).WithField("mode", mode).Debug("ignoring undecodable route geometry")
		}

		out.Features = append(out.Features, ports.RouteFeature{
			TimeSeconds:    *f.Properties.Time,
			DistanceMeters: *f.Properties.Distance,
			Legs:           legs,
			Geometry:       geom,
		})
	}

	return out, nil
}

// LineGeometry fetches the primary route's path in provider order.
// MultiLineString geometries are flattened in order.
func (g *GeoapifyClient) LineGeometry(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	mode domain.GeometryMode,
) (_ orb.LineString, err error) {
	defer obs.Time(ctx, g.log, "geoapify.LineGeometry."+string(mode))(&err)

	rr, err := g.routing(ctx, origin, destination, string(mode))
	if err != nil {
		return nil, err
	}

	if len(rr.Features) == 0 {
		return nil, nil
	}

	geom, err := decodeGeometry(rr.Features[0].Geometry)
	if err != nil {
		return nil, err
	}

	return flatten(geom), nil
}

// routing shares one request/caching path between Route and LineGeometry:
// both ask the same endpoint for the same waypoints.
func (g *GeoapifyClient) routing(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	mode string,
) (*routingResponse, error) {
	waypoints := origin.Waypoint() + "|" + destination.Waypoint()
	key := "routing|" + mode + "|" + waypoints

	if body, ok := g.cached(ctx, key); ok {
		var rr routingResponse
		if err := json.Unmarshal(body, &rr); err == nil {
			return &rr, nil
		}
		g.log.WithField("key", key).Warn("discarding undecodable cached routing response")
	}

	params := url.Values{}
	params.Set("waypoints", waypoints)
	params.Set("mode", mode)

	body, err := g.fetch(ctx, "routing", routingPath, params)
	if err != nil {
		return nil, err
	}

	var rr routingResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return nil, fmt.Errorf("decode routing response: %w", err)
	}

	if len(rr.Features) > 0 {
		g.remember(ctx, key, body)
	}

	return &rr, nil
}

func decodeGeometry(raw json.RawMessage) (orb.Geometry, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	geom, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return nil, fmt.Errorf("decode geometry: %w", err)
	}
	if geom == nil {
		return nil, errors.New("decode geometry: empty geometry object")
	}

	return geom.Geometry(), nil
}

func flatten(geom orb.Geometry) orb.LineString {
	switch g := geom.(type) {
	case orb.LineString:
		return g
	case orb.MultiLineString:
		var out orb.LineString
		for _, ls := range g {
			out = append(out, ls...)
		}
		return out
	default:
		return nil
	}
}

// legName returns the leg endpoint name when the provider sends a plain string.
func legName(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}
