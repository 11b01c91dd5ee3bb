package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidCoordinates marks a caller-supplied location that cannot be used
// for routing. It is the only error the search and render paths return.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Immutable geographic coordinates in decimal degrees (WGS84).
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Validate rejects non-finite values and values outside the geographic range.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) {
		return fmt.Errorf("%w: non-finite lat=%v lon=%v", ErrInvalidCoordinates, c.Lat, c.Lon)
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidCoordinates, c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidCoordinates, c.Lon)
	}
	return nil
}

// Return coordinates as "lat,lon" for the provider waypoint parameter.
func (c Coordinates) Waypoint() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// ParseCoordinates parses textual latitude/longitude. Values that fail numeric
// parsing are rejected rather than treated as zero.
func ParseCoordinates(lat, lon string) (Coordinates, error) {
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: latitude %q is not a number", ErrInvalidCoordinates, lat)
	}

	lo, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: longitude %q is not a number", ErrInvalidCoordinates, lon)
	}

	c := Coordinates{Lat: la, Lon: lo}
	if err := c.Validate(); err != nil {
		return Coordinates{}, err
	}
	return c, nil
}
