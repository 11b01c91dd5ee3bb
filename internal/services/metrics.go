package services

import "time"

// Metrics receives service-level observations. The Prometheus collector in
// platform/metrics satisfies it.
type Metrics interface {
	ModeFetchFailed(mode string)
	RouteSynthesized(mode string)
	GeometryFallback(reason string)
	SearchObserved(d time.Duration, routes int)
}

type nopMetrics struct{}

func (nopMetrics) ModeFetchFailed(string)            {}
func (nopMetrics) RouteSynthesized(string)           {}
func (nopMetrics) GeometryFallback(string)           {}
func (nopMetrics) SearchObserved(time.Duration, int) {}
