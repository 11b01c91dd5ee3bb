package ports

import (
	"context"
	"time"
)

// Summary of a completed route search.
type SearchEvent struct {
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	Modes          []string  `json:"modes"`
	RouteCount     int       `json:"routeCount"`
	StraightLineKm float64   `json:"straightLineKm"`
	At             time.Time `json:"at"`
}

type SearchEventPublisher interface {
	PublishSearch(ctx context.Context, ev SearchEvent) error
}
