// Package store caches fitted forecast results so that repeated requests
// for the same historical window don't refit the model. Fit is a pure
// function of (series, start_year, start_month, p, d, q, seasonal_period,
// use_easter_regressor), and the forecast additionally of forecast_months,
// so keying the cache on a hash of all of those inputs is sound: a cache
// hit is always exactly the response a fresh fit would have produced.
package store

import (
	"context"
	"time"

	"github.com/blizzardcast/blizzard/pkg/api"
)

// Entry is the cached payload for one forecast key: the response body the
// service would otherwise have recomputed, plus when it was produced.
type Entry struct {
	Response    api.ForecastResponse
	GeneratedAt time.Time
}

// Store caches forecast entries by key. Implementations must be safe for
// concurrent use.
type Store interface {
	Put(ctx context.Context, key string, entry Entry) error
	Get(ctx context.Context, key string) (Entry, bool, error)
}
