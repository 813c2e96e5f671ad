// Package collector fetches a monthly time series from an external source
// so a host doesn't have to embed the series literally in a forecast
// request. This is an enrichment the browser-bound WASM original never
// needed (its caller always had the array already in hand); a Go service
// embedding the same core plausibly wants to pull history from wherever
// it already tracks a metric.
package collector

import "context"

// Collector fetches the most recent `months` monthly values of a series
// from an external system. Implementations must respect ctx cancellation
// and must never panic.
type Collector interface {
	Collect(ctx context.Context, months int) ([]float64, error)
	Name() string
}
