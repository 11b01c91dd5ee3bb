package domain

import "fmt"

// A geocoded place: a human-readable formatted name plus its coordinates.
// Locations are produced by the geocoder and consumed read-only by routing.
type Location struct {
	Name string
	Coordinates
}

func (l Location) Validate() error {
	if err := l.Coordinates.Validate(); err != nil {
		return fmt.Errorf("location %q: %w", l.Name, err)
	}
	return nil
}
