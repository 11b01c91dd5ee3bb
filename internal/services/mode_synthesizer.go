package services

import (
	"math"
	"time"
	"travel-compare-service/internal/domain"
	"travel-compare-service/internal/geo"
)

const (
	// FlightThresholdKm is the straight-line distance above which a plane
	// option is offered.
	FlightThresholdKm = 300.0

	flightOverheadMinutes = 30
	flightCruiseKmh       = 800.0
)

// AugmentRoutes returns routes plus a synthesized plane option when origin and
// destination are more than FlightThresholdKm apart. The input slice is never
// modified; at or below the threshold it is returned as is.
func AugmentRoutes(
	routes []domain.RouteOption,
	origin domain.Location,
	destination domain.Location,
	now time.Time,
) []domain.RouteOption {
	km := geo.HaversineKm(origin.Coordinates, destination.Coordinates)
	if !(km > FlightThresholdKm) {
		return routes
	}

	out := make([]domain.RouteOption, 0, len(routes)+1)
	out = append(out, routes...)
	return append(out, synthesizeFlight(km, origin, destination, now))
}

// synthesizeFlight builds a plane option from the straight-line distance.
// Duration and price use the unrounded distance; the reported distance is
// rounded to one decimal like every other option.
func synthesizeFlight(km float64, origin, destination domain.Location, now time.Time) domain.RouteOption {
	minutes := flightOverheadMinutes + int(math.Round(km/flightCruiseKmh*60))
	distanceKm := domain.RoundTenth(km)

	return domain.RouteOption{
		ID:              routeID(string(domain.ModePlane), now),
		Mode:            domain.ModePlane,
		DurationMinutes: minutes,
		DistanceKm:      distanceKm,
		Price:           domain.EstimatePrice(domain.ModePlane, km),
		Segments: []domain.Segment{{
			Mode:            domain.ModePlane,
			From:            origin.Name,
			To:              destination.Name,
			DurationMinutes: minutes,
			DistanceKm:      distanceKm,
		}},
	}
}
