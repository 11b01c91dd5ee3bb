package domain

import "math"

// Represents one leg of a route option.
// Duration is in whole minutes and distance in kilometers with one decimal.
type Segment struct {
	Mode            Mode
	From            string
	To              string
	DurationMinutes int
	DistanceKm      float64
}

// Represents one complete itinerary for a single transport mode.
//
// IDs are "{mode}-{unix millis}" and are only unique within one search result
// set. Segments are in travel order; an option with no segments is valid.
type RouteOption struct {
	ID              string
	Mode            Mode
	DurationMinutes int
	DistanceKm      float64
	Price           string
	Segments        []Segment
}

// SecondsToMinutes converts a provider duration to whole minutes.
func SecondsToMinutes(seconds float64) int {
	return int(math.Round(seconds / 60))
}

// MetersToKm converts a provider distance to kilometers with one decimal.
func MetersToKm(meters float64) float64 {
	return RoundTenth(meters / 1000)
}

func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
