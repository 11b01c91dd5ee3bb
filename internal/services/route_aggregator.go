package services

import (
	"context"
	"time"
	"travel-compare-service/internal/domain"
	"travel-compare-service/internal/geo"
	"travel-compare-service/internal/platform/obs"
	"travel-compare-service/internal/ports"

	"github.com/sirupsen/logrus"
)

// RouteSearchService is the search entry point: fetch every provider mode,
// then append synthesized modes.
type RouteSearchService struct {
	fetcher   *RouteFetcher
	publisher ports.SearchEventPublisher
	log       logrus.FieldLogger
	metrics   Metrics
	now       func() time.Time
}

func NewRouteSearchService(
	fetcher *RouteFetcher,
	publisher ports.SearchEventPublisher,
	log logrus.FieldLogger,
	m Metrics,
) *RouteSearchService {
	if log == nil {
		log = obs.Discard()
	}
	if m == nil {
		m = nopMetrics{}
	}
	return &RouteSearchService{
		fetcher:   fetcher,
		publisher: publisher,
		log:       log,
		metrics:   m,
		now:       time.Now,
	}
}

// Search returns every available route option between origin and destination.
//
// Fetched modes come first in fetch order, followed by synthesized modes. The
// result is never nil; an empty slice means no route was found. The only
// error is domain.ErrInvalidCoordinates for unusable origin or destination.
func (s *RouteSearchService) Search(
	ctx context.Context,
	origin domain.Location,
	destination domain.Location,
) (_ []domain.RouteOption, err error) {
	defer obs.Time(ctx, s.log, "routes.Search")(&err)

	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if err := destination.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	fetched := s.fetcher.FetchAll(ctx, origin, destination)
	routes := AugmentRoutes(fetched, origin, destination, s.now())

	for _, r := range routes[len(fetched):] {
		s.metrics.RouteSynthesized(string(r.Mode))
	}
	s.metrics.SearchObserved(time.Since(start), len(routes))

	s.publish(ctx, origin, destination, routes)

	return routes, nil
}

func (s *RouteSearchService) publish(
	ctx context.Context,
	origin domain.Location,
	destination domain.Location,
	routes []domain.RouteOption,
) {
	if s.publisher == nil {
		return
	}

	modes := make([]string, 0, len(routes))
	for _, r := range routes {
		modes = append(modes, string(r.Mode))
	}

	ev := ports.SearchEvent{
		Origin:         origin.Name,
		Destination:    destination.Name,
		Modes:          modes,
		RouteCount:     len(routes),
		StraightLineKm: domain.RoundTenth(geo.HaversineKm(origin.Coordinates, destination.Coordinates)),
		At:             s.now().UTC(),
	}

	if err := s.publisher.PublishSearch(ctx, ev); err != nil {
		s.log.WithError(err).WithField("req_id", obs.RequestID(ctx)).Warn("search event publish failed")
	}
}
