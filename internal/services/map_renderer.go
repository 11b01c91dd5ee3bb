package services

import (
	"context"
	"math"
	"sync"
	"travel-compare-service/internal/domain"
	"travel-compare-service/internal/platform/obs"
	"travel-compare-service/internal/ports"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	fitPaddingPx    = 50
	singlePointZoom = 12
)

var (
	routeLineStyle = ports.LineStyle{Weight: 5, Opacity: 0.7}

	fallbackLineStyle = ports.LineStyle{
		Color:     domain.NeutralColor,
		Weight:    3,
		Opacity:   0.5,
		DashArray: "5, 10",
	}
)

// MapRouteRenderer draws route options on a MapSurface.
//
// The overlays it adds form one bundle owned by the renderer. Every Render
// removes the previous bundle before adding the new one, so overlays never
// accumulate across searches.
type MapRouteRenderer struct {
	geometry    ports.GeometryProvider
	surface     ports.MapSurface
	concurrency int
	log         logrus.FieldLogger
	metrics     Metrics

	mu     sync.Mutex
	bundle []ports.OverlayID
}

func NewMapRouteRenderer(
	geometry ports.GeometryProvider,
	surface ports.MapSurface,
	concurrency int,
	log logrus.FieldLogger,
	m Metrics,
) *MapRouteRenderer {
	if concurrency <= 0 {
		concurrency = 4
	}
	if log == nil {
		log = obs.Discard()
	}
	if m == nil {
		m = nopMetrics{}
	}
	return &MapRouteRenderer{
		geometry:    geometry,
		surface:     surface,
		concurrency: concurrency,
		log:         log,
		metrics:     m,
	}
}

type linePlan struct {
	path  []domain.Coordinates
	style ports.LineStyle
}

// Render replaces the current overlays with markers for origin and
// destination, a viewport covering both, and one line per route in route
// order.
//
// Routes whose geometry cannot be fetched or comes back empty are drawn as a
// dashed straight fallback line. Invalid coordinates clear the map and return
// domain.ErrInvalidCoordinates; nothing else is returned as an error.
func (r *MapRouteRenderer) Render(
	ctx context.Context,
	origin domain.Location,
	destination domain.Location,
	routes []domain.RouteOption,
) (err error) {
	defer obs.Time(ctx, r.log, "map.Render")(&err)

	if err := origin.Validate(); err != nil {
		r.replace(nil)
		return err
	}
	if err := destination.Validate(); err != nil {
		r.replace(nil)
		return err
	}

	plans := make([]linePlan, len(routes))

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, route := range routes {
		g.Go(func() error {
			plans[i] = r.planLine(ctx, origin, destination, route)
			return nil
		})
	}
	_ = g.Wait()

	r.replace(func(s ports.MapSurface) []ports.OverlayID {
		bundle := make([]ports.OverlayID, 0, 2+len(plans))
		bundle = append(bundle,
			s.AddMarker(origin.Coordinates, "Origin: "+origin.Name),
			s.AddMarker(destination.Coordinates, "Destination: "+destination.Name),
		)

		if origin.Coordinates != destination.Coordinates {
			sw, ne := bounds(origin.Coordinates, destination.Coordinates)
			s.FitBounds(sw, ne, fitPaddingPx)
		} else {
			s.SetView(origin.Coordinates, singlePointZoom)
		}

		for _, p := range plans {
			bundle = append(bundle, s.AddLine(p.path, p.style))
		}
		return bundle
	})

	return nil
}

// replace tears down the current bundle and installs the one built by draw.
// A nil draw leaves the surface empty with no viewport.
func (r *MapRouteRenderer) replace(draw func(ports.MapSurface) []ports.OverlayID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.bundle {
		r.surface.Remove(id)
	}
	r.bundle = nil

	if draw == nil {
		r.surface.ResetView()
		return
	}
	r.bundle = draw(r.surface)
}

func (r *MapRouteRenderer) planLine(
	ctx context.Context,
	origin domain.Location,
	destination domain.Location,
	route domain.RouteOption,
) linePlan {
	straight := []domain.Coordinates{origin.Coordinates, destination.Coordinates}

	// Synthesized modes have no provider geometry; their straight line is the
	// route itself, not a fallback.
	if route.Mode.Synthesized() {
		return linePlan{path: straight, style: styled(route.Mode)}
	}

	entry := r.log.WithFields(logrus.Fields{
		"req_id": obs.RequestID(ctx),
		"route":  route.ID,
		"mode":   route.Mode,
	})

	line, err := r.geometry.LineGeometry(ctx, origin.Coordinates, destination.Coordinates, route.Mode.GeometryMode())
	if err != nil {
		r.metrics.GeometryFallback("error")
		entry.WithError(err).Warn("route geometry fetch failed, drawing straight line")
		return linePlan{path: straight, style: fallbackLineStyle}
	}
	if len(line) < 2 {
		r.metrics.GeometryFallback("empty")
		entry.Warn("route geometry empty, drawing straight line")
		return linePlan{path: straight, style: fallbackLineStyle}
	}

	// Provider geometry is longitude-first.
	path := make([]domain.Coordinates, 0, len(line))
	for _, p := range line {
		c := domain.Coordinates{Lat: p.Lat(), Lon: p.Lon()}
		if c.Validate() != nil {
			r.metrics.GeometryFallback("invalid")
			entry.WithField("point", p).Warn("route geometry has invalid point, drawing straight line")
			return linePlan{path: straight, style: fallbackLineStyle}
		}
		path = append(path, c)
	}

	return linePlan{path: path, style: styled(route.Mode)}
}

func styled(m domain.Mode) ports.LineStyle {
	s := routeLineStyle
	s.Color = m.Color()
	return s
}

func bounds(a, b domain.Coordinates) (southWest, northEast domain.Coordinates) {
	southWest = domain.Coordinates{Lat: math.Min(a.Lat, b.Lat), Lon: math.Min(a.Lon, b.Lon)}
	northEast = domain.Coordinates{Lat: math.Max(a.Lat, b.Lat), Lon: math.Max(a.Lon, b.Lon)}
	return southWest, northEast
}
