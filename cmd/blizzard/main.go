// Command blizzard serves the monthly ARIMA forecasting API.
//
// It fits a seasonal ARIMA(p,d,q) model, with an optional Easter exogenous
// regressor, to a monthly time series supplied in the request body, and
// returns a point forecast with confidence intervals. Identical requests
// are served from a cache (in-memory or Redis) rather than refit.
//
// Routes served:
//   - POST /forecast       - Fit a model and return a forecast
//   - GET  /easter-dates   - Return invoice-month dates for a year range
//   - GET  /version        - Return the running build version
//   - GET  /healthz        - Health check endpoint
//   - GET  /metrics        - Prometheus metrics endpoint
//
// Environment variables:
//
//	LISTEN          - HTTP listen address (default: :8090)
//	LOG_FORMAT      - Logging format: text, json (default: text)
//	LOG_LEVEL       - Logging level: debug, info, warn, error (default: info)
//	STORAGE         - Cache backend: memory or redis (default: memory)
//	REDIS_ADDR      - Redis server address
//	REDIS_PASSWORD  - Redis password (optional)
//	REDIS_DB        - Redis database number
//	REDIS_TTL       - Forecast cache TTL (default: 30m)
//	TLS_ENABLED     - Terminate TLS directly on the HTTP listener
//	TLS_CERT_FILE   - TLS certificate file
//	TLS_KEY_FILE    - TLS key file
//	TLS_CA_FILE     - TLS client CA file for mutual TLS
//	SERIES_SOURCE             - Series collector for requests without an inline series: http, prometheus
//	SERIES_HTTP_URL           - HTTP endpoint to collect the series from
//	SERIES_HTTP_VALUE_PATH    - gjson path extracting the monthly value array from the HTTP response
//	SERIES_PROMETHEUS_URL     - Prometheus server base URL to collect the series from
//	SERIES_PROMETHEUS_QUERY   - PromQL query to collect the series from
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blizzardcast/blizzard/cmd/blizzard/config"
	"github.com/blizzardcast/blizzard/cmd/blizzard/logger"
	"github.com/blizzardcast/blizzard/cmd/blizzard/metrics"
	"github.com/blizzardcast/blizzard/cmd/blizzard/router"
	"github.com/blizzardcast/blizzard/pkg/collector"
	"github.com/blizzardcast/blizzard/pkg/httpx"
	"github.com/blizzardcast/blizzard/pkg/store"
	blizzardtls "github.com/blizzardcast/blizzard/pkg/tls"
)

// version is set via ldflags at build time.
var version = "dev"

func main() {
	cfg := config.ParseFlags()

	log := logger.New(cfg)
	slog.SetDefault(log)

	log.Info("starting blizzard forecast service", "version", version, "storage", cfg.Storage)

	cache, err := newStore(cfg)
	if err != nil {
		log.Error("failed to initialize cache store", "error", err)
		os.Exit(1)
	}
	if closer, ok := cache.(interface{ Close() error }); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Error("failed to close cache store", "error", err)
			}
		}()
	}

	coll, err := newCollector(cfg)
	if err != nil {
		log.Error("failed to initialize series collector", "error", err)
		os.Exit(1)
	}

	svc := NewService(cache, coll, metrics.New(), log)

	mux := router.SetupRoutes(svc, version, log)
	httpServer := httpx.NewServer(cfg.Listen, mux, log)

	tlsCfg := blizzardtls.Config{
		Enabled:  cfg.TLSEnabled,
		CertFile: cfg.TLSCertFile,
		KeyFile:  cfg.TLSKeyFile,
		CAFile:   cfg.TLSCAFile,
	}
	if err := tlsCfg.Validate(); err != nil {
		log.Error("invalid TLS configuration", "error", err)
		os.Exit(1)
	}
	if cfg.TLSEnabled {
		serverTLS, err := blizzardtls.NewServerTLSConfig(cfg.TLSCertFile, cfg.TLSKeyFile, cfg.TLSCAFile)
		if err != nil {
			log.Error("failed to build TLS configuration", "error", err)
			os.Exit(1)
		}
		httpServer.SetTLSConfig(serverTLS)
	}

	serverErr := make(chan error, 1)
	go func() {
		if cfg.TLSEnabled {
			serverErr <- httpServer.StartTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
			return
		}
		serverErr <- httpServer.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", "signal", sig)
	case err := <-serverErr:
		if err != nil {
			log.Error("server failed", "error", err)
		}
	}

	log.Info("shutting down")

	if err := httpServer.Stop(10 * time.Second); err != nil {
		log.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("shutdown complete")
}

func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Storage {
	case "redis":
		return store.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisTTL)
	default:
		return store.NewMemoryStoreWithTTL(cfg.RedisTTL, time.Minute), nil
	}
}

// newCollector builds the series collector selected by cfg.SeriesSource, or
// nil if series collection is disabled (the default), in which case every
// forecast request must carry its series inline.
func newCollector(cfg *config.Config) (collector.Collector, error) {
	switch cfg.SeriesSource {
	case "":
		return nil, nil
	case "http":
		if cfg.SeriesHTTPURL == "" || cfg.SeriesHTTPValuePath == "" {
			return nil, fmt.Errorf("series-source=http requires series-http-url and series-http-value-path")
		}
		return &collector.HTTPCollector{
			URL:       cfg.SeriesHTTPURL,
			ValuePath: cfg.SeriesHTTPValuePath,
		}, nil
	case "prometheus":
		if cfg.SeriesPrometheusURL == "" || cfg.SeriesPrometheusQuery == "" {
			return nil, fmt.Errorf("series-source=prometheus requires series-prometheus-url and series-prometheus-query")
		}
		return &collector.PrometheusCollector{
			ServerURL: cfg.SeriesPrometheusURL,
			Query:     cfg.SeriesPrometheusQuery,
		}, nil
	default:
		return nil, fmt.Errorf("unknown series-source %q: want http or prometheus", cfg.SeriesSource)
	}
}
