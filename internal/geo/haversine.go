// Package geo provides great-circle distance for mode synthesis decisions.
// It is not a router: road and rail distances come from the provider.
package geo

import (
	"math"
	"travel-compare-service/internal/domain"
)

// EarthRadiusKm is the mean Earth radius used by HaversineKm.
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between a and b in kilometers.
func HaversineKm(a, b domain.Coordinates) float64 {
	dLat := degToRad(b.Lat - a.Lat)
	dLon := degToRad(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(a.Lat))*math.Cos(degToRad(b.Lat))*sinLon*sinLon

	// Rounding can push h slightly past 1 for near-antipodal points.
	h = math.Min(math.Max(h, 0), 1)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
