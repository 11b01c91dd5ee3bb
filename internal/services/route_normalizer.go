package services

import (
	"fmt"
	"math"
	"strconv"
	"time"
	"travel-compare-service/internal/domain"
	"travel-compare-service/internal/ports"
)

// NormalizeRoute converts the primary feature of a provider response into a
// RouteOption for the provider mode's display mode.
//
// Alternate features are ignored. Legs without endpoint names fall back to
// the origin and destination names. Negative or non-finite provider values
// are rejected so they never reach a result set.
func NormalizeRoute(
	resp *ports.RouteResponse,
	mode domain.ProviderMode,
	origin domain.Location,
	destination domain.Location,
	now time.Time,
) (domain.RouteOption, error) {
	if resp == nil || len(resp.Features) == 0 {
		return domain.RouteOption{}, ports.ErrNoFeatures
	}

	f := resp.Features[0]
	if !validMeasure(f.TimeSeconds) || !validMeasure(f.DistanceMeters) {
		return domain.RouteOption{}, fmt.Errorf(
			"normalize %s route: invalid time=%v distance=%v",
			mode, f.TimeSeconds, f.DistanceMeters,
		)
	}

	display := mode.DisplayMode()

	segments := make([]domain.Segment, 0, len(f.Legs))
	for i, leg := range f.Legs {
		if !validMeasure(leg.TimeSeconds) || !validMeasure(leg.DistanceMeters) {
			return domain.RouteOption{}, fmt.Errorf(
				"normalize %s route: leg %d: invalid time=%v distance=%v",
				mode, i, leg.TimeSeconds, leg.DistanceMeters,
			)
		}

		from := leg.From
		if from == "" {
			from = origin.Name
		}
		to := leg.To
		if to == "" {
			to = destination.Name
		}

		segments = append(segments, domain.Segment{
			Mode:            display,
			From:            from,
			To:              to,
			DurationMinutes: domain.SecondsToMinutes(leg.TimeSeconds),
			DistanceKm:      domain.MetersToKm(leg.DistanceMeters),
		})
	}

	distanceKm := domain.MetersToKm(f.DistanceMeters)

	return domain.RouteOption{
		ID:              routeID(string(mode), now),
		Mode:            display,
		DurationMinutes: domain.SecondsToMinutes(f.TimeSeconds),
		DistanceKm:      distanceKm,
		Price:           domain.EstimatePrice(display, distanceKm),
		Segments:        segments,
	}, nil
}

func validMeasure(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// routeID builds "{prefix}-{unix millis}". IDs only need to be unique within
// one result set, where every mode appears at most once.
func routeID(prefix string, now time.Time) string {
	return prefix + "-" + strconv.FormatInt(now.UnixMilli(), 10)
}
