package ports

import (
	"context"
	"travel-compare-service/internal/domain"
)

// Contract for resolving free text into candidate locations.
type Geocoder interface {
	Autocomplete(ctx context.Context, text string, limit int) ([]domain.Location, error)
}
