package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/blizzardcast/blizzard/cmd/blizzard/metrics"
	"github.com/blizzardcast/blizzard/pkg/api"
	"github.com/blizzardcast/blizzard/pkg/collector"
	"github.com/blizzardcast/blizzard/pkg/store"
)

// Service orchestrates the parse, cache lookup, fit, forecast, and respond
// stages behind the HTTP API, recording timing and cache metrics around the
// pure pkg/api.Forecast pipeline.
type Service struct {
	cache     store.Store
	collector collector.Collector
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewService builds a Service backed by the given cache and metrics. coll
// may be nil, in which case every request must carry its series inline.
func NewService(cache store.Store, coll collector.Collector, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{cache: cache, collector: coll, metrics: m, logger: logger}
}

// Forecast parses and validates a raw JSON request, serves a cached
// response when one exists for the same parameters, and otherwise fits a
// fresh model, caches the result, and returns the JSON response body.
func (s *Service) Forecast(body []byte) []byte {
	body = s.resolveSeries(body)

	req, err := api.ParseForecastRequest(body)
	if err != nil {
		s.metrics.RecordError("api", "parse")
		return api.Forecast(body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := store.Key(req)
	if entry, found, err := s.cache.Get(ctx, key); err == nil && found {
		s.metrics.RecordCacheHit()
		encoded, marshalErr := json.Marshal(entry.Response)
		if marshalErr == nil {
			return encoded
		}
	} else if err != nil {
		s.logger.Warn("cache lookup failed", "error", err)
	}
	s.metrics.RecordCacheMiss()

	start := time.Now()
	out := api.Forecast(body)
	s.metrics.RecordFit(time.Since(start).Seconds())

	if gjson.GetBytes(out, "error").Exists() {
		s.metrics.RecordError("forecast", "fit")
		return out
	}

	var resp api.ForecastResponse
	if err := json.Unmarshal(out, &resp); err != nil {
		s.metrics.RecordError("forecast", "serialize")
		return out
	}

	if err := s.cache.Put(ctx, key, store.Entry{Response: resp, GeneratedAt: time.Now()}); err != nil {
		s.logger.Warn("cache write failed", "error", err)
	}

	return out
}

// resolveSeries fills in the "series" field of a raw request body from the
// configured collector when the field is absent and the body instead
// carries "history_months", the number of trailing months to pull. If no
// collector is configured, or the body already has an inline series, or
// "history_months" is absent, body is returned unchanged and the normal
// "series" required-field validation in pkg/api handles the rest.
func (s *Service) resolveSeries(body []byte) []byte {
	if s.collector == nil {
		return body
	}
	if gjson.GetBytes(body, "series").Exists() {
		return body
	}
	historyMonths := gjson.GetBytes(body, "history_months")
	if !historyMonths.Exists() {
		return body
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	series, err := s.collector.Collect(ctx, int(historyMonths.Int()))
	if err != nil {
		s.logger.Warn("series collection failed", "collector", s.collector.Name(), "error", err)
		return body
	}

	enriched, err := sjson.SetBytes(body, "series", series)
	if err != nil {
		s.logger.Warn("failed to inject collected series into request", "error", err)
		return body
	}
	return enriched
}
