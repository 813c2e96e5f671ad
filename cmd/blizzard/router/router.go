// Package router configures HTTP routes for the forecast service's HTTP API.
//
// Routes configured:
//   - POST /forecast       - Fit an ARIMA model to a monthly series and return a forecast
//   - GET  /easter-dates   - Return the invoice-month dates used by the Easter regressor
//   - GET  /version        - Return the running build version
//   - GET  /healthz        - Health check endpoint (returns 200 OK)
//   - GET  /metrics        - Prometheus metrics endpoint
package router

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blizzardcast/blizzard/pkg/api"
	"github.com/blizzardcast/blizzard/pkg/httpx"
)

// Service is the subset of the service orchestration layer the router needs.
type Service interface {
	Forecast(body []byte) []byte
}

// SetupRoutes configures HTTP endpoints for the forecast service, wrapped
// in logging and panic-recovery middleware so a handler panic never
// escapes as a bare connection reset.
func SetupRoutes(svc Service, version string, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/healthz", httpx.HealthHandler())
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/forecast", handleForecast(svc, logger))
	mux.HandleFunc("/easter-dates", handleEasterDates(logger))
	mux.HandleFunc("/version", handleVersion(version))

	return httpx.RecoveryMiddleware(logger)(httpx.LoggingMiddleware(logger)(mux))
}

func handleForecast(svc Service, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			httpx.WriteErrorMessage(w, http.StatusMethodNotAllowed, "forecast requires POST")
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Error("failed to read request body", "error", err)
			httpx.WriteErrorMessage(w, http.StatusBadRequest, "failed to read request body")
			return
		}

		resp := svc.Forecast(body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(resp); err != nil {
			logger.Error("failed to write forecast response", "error", err)
		}
	}
}

func handleEasterDates(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startYear, err := strconv.Atoi(r.URL.Query().Get("start"))
		if err != nil {
			httpx.WriteErrorMessage(w, http.StatusBadRequest, "start query parameter must be an integer year")
			return
		}

		endYear, err := strconv.Atoi(r.URL.Query().Get("end"))
		if err != nil {
			httpx.WriteErrorMessage(w, http.StatusBadRequest, "end query parameter must be an integer year")
			return
		}

		resp := api.GetEasterDates(startYear, endYear)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(resp); err != nil {
			logger.Error("failed to write easter-dates response", "error", err)
		}
	}
}

func handleVersion(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(version))
	}
}
