// Package api implements the JSON request/response boundary for the
// forecast service: the same contract the original WASM library exposed
// to its browser callers, carried through field-for-field.
package api

import "github.com/blizzardcast/blizzard/pkg/forecast"

const (
	defaultP                  = 2
	defaultD                  = 1
	defaultQ                  = 1
	defaultSeasonalPeriod     = 12
	defaultUseEasterRegressor = true
)

// ForecastRequest is the JSON input to the forecast boundary operation.
// p, d, q, seasonal_period, and use_easter_regressor fall back to their
// defaults (matching the Rust original's serde defaults) when omitted.
type ForecastRequest struct {
	Series             []float64 `json:"series"`
	StartYear          int       `json:"start_year"`
	StartMonth         int       `json:"start_month"`
	ForecastMonths     int       `json:"forecast_months"`
	P                  int       `json:"p"`
	D                  int       `json:"d"`
	Q                  int       `json:"q"`
	SeasonalPeriod     int       `json:"seasonal_period"`
	UseEasterRegressor bool      `json:"use_easter_regressor"`
}

// requiredFields lists the top-level JSON fields that carry no default and
// must be present for a request to be well-formed.
var requiredFields = []string{"series", "start_year", "start_month", "forecast_months"}

// ForecastResponse is the JSON output of the forecast boundary operation,
// mirroring the original's ForecastOutput field-for-field.
type ForecastResponse struct {
	Forecast          []float64 `json:"forecast"`
	Lower             []float64 `json:"lower"`
	Upper             []float64 `json:"upper"`
	SeasonalFactors   []float64 `json:"seasonal_factors"`
	EasterCoefficient float64   `json:"easter_coefficient"`
	ARCoefficients    []float64 `json:"ar_coefficients"`
	MACoefficients    []float64 `json:"ma_coefficients"`
	Intercept         float64   `json:"intercept"`
}

// ErrorResponse is the JSON shape returned for any failure at the
// forecast boundary, matching the original's single-field ErrorOutput.
type ErrorResponse struct {
	Error string `json:"error"`
}

// EasterDate is one record of the get_easter_dates response.
type EasterDate struct {
	Year         int `json:"year"`
	EasterMonth  int `json:"easter_month"`
	EasterDay    int `json:"easter_day"`
	InvoiceYear  int `json:"invoice_year"`
	InvoiceMonth int `json:"invoice_month"`
}

// presentFields records, for each optional field, whether the JSON body
// actually carried it. Defaults must only be substituted for a field that
// was genuinely absent: an explicit "q":0 or "d":0 is a legitimate ARIMA
// configuration (spec.md §4.7) and must be honored, not overwritten.
type presentFields struct {
	p, d, q, seasonalPeriod, useEasterRegressor bool
}

// applyDefaults fills optional fields with their documented defaults, but
// only where presentFields reports the field was missing from the input
// entirely — matching the original Rust boundary's
// #[serde(default = "default_p")]-style per-field presence semantics
// rather than defaulting on a zero value.
func (r *ForecastRequest) applyDefaults(present presentFields) {
	if !present.p {
		r.P = defaultP
	}
	if !present.d {
		r.D = defaultD
	}
	if !present.q {
		r.Q = defaultQ
	}
	if !present.seasonalPeriod {
		r.SeasonalPeriod = defaultSeasonalPeriod
	}
	if !present.useEasterRegressor {
		r.UseEasterRegressor = defaultUseEasterRegressor
	}
}

// toConfig builds a forecast.Config from the (already defaulted) request.
func (r *ForecastRequest) toConfig() forecast.Config {
	return forecast.Config{P: r.P, D: r.D, Q: r.Q, S: r.SeasonalPeriod}
}
