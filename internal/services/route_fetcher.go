package services

import (
	"context"
	"time"
	"travel-compare-service/internal/domain"
	"travel-compare-service/internal/platform/obs"
	"travel-compare-service/internal/ports"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RouteFetcher queries the routing provider once per fetch mode, concurrently,
// and keeps whichever modes succeed.
type RouteFetcher struct {
	provider ports.RouteProvider
	modes    []domain.ProviderMode
	log      logrus.FieldLogger
	metrics  Metrics
	now      func() time.Time
}

func NewRouteFetcher(provider ports.RouteProvider, log logrus.FieldLogger, m Metrics) *RouteFetcher {
	if log == nil {
		log = obs.Discard()
	}
	if m == nil {
		m = nopMetrics{}
	}
	return &RouteFetcher{
		provider: provider,
		modes:    domain.FetchModes,
		log:      log,
		metrics:  m,
		now:      time.Now,
	}
}

// FetchAll waits for every mode to settle and returns the normalized routes in
// fetch-mode order. A failing mode contributes nothing and never cancels the
// others; if every mode fails the result is empty, not an error.
func (f *RouteFetcher) FetchAll(ctx context.Context, origin, destination domain.Location) []domain.RouteOption {
	results := make([]*domain.RouteOption, len(f.modes))

	// Tasks always return nil so one failure cannot cancel its siblings.
	var g errgroup.Group
	for i, mode := range f.modes {
		g.Go(func() error {
			r, err := f.fetchMode(ctx, origin, destination, mode)
			if err != nil {
				f.metrics.ModeFetchFailed(string(mode))
				f.log.WithError(err).WithFields(logrus.Fields{
					"req_id": obs.RequestID(ctx),
					"mode":   mode,
				}).Warn("route fetch failed for mode")
				return nil
			}
			results[i] = &r
			return nil
		})
	}
	_ = g.Wait()

	routes := make([]domain.RouteOption, 0, len(results))
	for _, r := range results {
		if r != nil {
			routes = append(routes, *r)
		}
	}
	return routes
}

func (f *RouteFetcher) fetchMode(
	ctx context.Context,
	origin domain.Location,
	destination domain.Location,
	mode domain.ProviderMode,
) (_ domain.RouteOption, err error) {
	defer obs.Time(ctx, f.log, "routes.fetch."+string(mode))(&err)

	resp, err := f.provider.Route(ctx, origin.Coordinates, destination.Coordinates, mode)
	if err != nil {
		return domain.RouteOption{}, err
	}

	return NormalizeRoute(resp, mode, origin, destination, f.now())
}
