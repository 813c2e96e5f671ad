package api

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/blizzardcast/blizzard/pkg/calendar"
	"github.com/blizzardcast/blizzard/pkg/forecast"
)

// ParseForecastRequest decodes a raw JSON request body into a
// ForecastRequest, pre-checking required fields with gjson so that a
// missing field produces the same "Failed to parse input: ..." diagnostic
// text the original gave for any serde decode failure, before falling
// through to a strict encoding/json decode for the rest.
func ParseForecastRequest(body []byte) (ForecastRequest, error) {
	if !gjson.ValidBytes(body) {
		return ForecastRequest{}, &boundaryError{
			Kind:    InputParse,
			Message: "Failed to parse input: invalid JSON",
		}
	}

	for _, field := range requiredFields {
		if !gjson.GetBytes(body, field).Exists() {
			return ForecastRequest{}, &boundaryError{
				Kind:    InputParse,
				Message: fmt.Sprintf("Failed to parse input: missing required field %q", field),
			}
		}
	}

	var req ForecastRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return ForecastRequest{}, &boundaryError{
			Kind:    InputParse,
			Message: fmt.Sprintf("Failed to parse input: %v", err),
		}
	}

	req.applyDefaults(presentFields{
		p:                  gjson.GetBytes(body, "p").Exists(),
		d:                  gjson.GetBytes(body, "d").Exists(),
		q:                  gjson.GetBytes(body, "q").Exists(),
		seasonalPeriod:     gjson.GetBytes(body, "seasonal_period").Exists(),
		useEasterRegressor: gjson.GetBytes(body, "use_easter_regressor").Exists(),
	})

	return req, nil
}

// Forecast runs the full parse → validate → fit → forecast pipeline on a
// raw JSON request body and returns a raw JSON response body — either a
// ForecastResponse or an ErrorResponse, never both, and never an error
// return, matching the original's "always produces a JSON string" contract.
func Forecast(body []byte) []byte {
	req, err := ParseForecastRequest(body)
	if err != nil {
		return mustMarshalError(err)
	}

	cfg := req.toConfig()
	if err := cfg.Validate(len(req.Series)); err != nil {
		return mustMarshalError(&boundaryError{
			Kind:    InputValidation,
			Message: "Series too short for specified ARIMA parameters",
		})
	}

	var exog, futureExog []float64
	if req.UseEasterRegressor {
		normYear, normMonth := calendar.NormalizeStart(req.StartYear, req.StartMonth)
		exog = calendar.Regressor(normYear, normMonth, len(req.Series))

		futureStartYear, futureStartMonth := calendar.NormalizeStart(normYear, normMonth+len(req.Series))
		futureExog = calendar.Regressor(futureStartYear, futureStartMonth, req.ForecastMonths)
	}

	model := forecast.NewModel(cfg)
	if err := model.Fit(req.Series, exog); err != nil {
		return mustMarshalError(&boundaryError{
			Kind:    InputValidation,
			Message: "Series too short for specified ARIMA parameters",
		})
	}

	result, err := model.Forecast(req.ForecastMonths, futureExog, 0.80)
	if err != nil {
		return mustMarshalError(&boundaryError{
			Kind:    InputValidation,
			Message: fmt.Sprintf("Failed to forecast: %v", err),
		})
	}

	resp := ForecastResponse{
		Forecast:          result.Forecast,
		Lower:             result.Lower,
		Upper:             result.Upper,
		SeasonalFactors:   result.SeasonalFactors,
		EasterCoefficient: result.EasterCoeff,
		ARCoefficients:    result.ARCoefficients,
		MACoefficients:    result.MACoefficients,
		Intercept:         result.Intercept,
	}

	out, err := json.Marshal(resp)
	if err != nil {
		return []byte(`{"error":"Failed to serialize output"}`)
	}
	return out
}

// GetEasterDates returns the JSON-encoded array of EasterDate records for
// the inclusive year range, matching get_easter_dates in the original.
func GetEasterDates(startYear, endYear int) []byte {
	dates := calendar.Dates(startYear, endYear)
	out := make([]EasterDate, len(dates))
	for i, d := range dates {
		out[i] = EasterDate{
			Year:         d.Year,
			EasterMonth:  d.EasterMonth,
			EasterDay:    d.EasterDay,
			InvoiceYear:  d.InvoiceYear,
			InvoiceMonth: d.InvoiceMonth,
		}
	}

	encoded, err := json.Marshal(out)
	if err != nil {
		return []byte("[]")
	}
	return encoded
}

// Version returns the service's build version string, matching version()
// in the original (there backed by CARGO_PKG_VERSION, here by the
// ldflags-injected build version).
func Version(buildVersion string) string {
	return buildVersion
}

func mustMarshalError(err error) []byte {
	be, ok := err.(*boundaryError)
	msg := err.Error()
	if ok {
		msg = be.Message
	}

	encoded, marshalErr := json.Marshal(ErrorResponse{Error: msg})
	if marshalErr != nil {
		return []byte(`{"error":"Failed to serialize error"}`)
	}
	return encoded
}
