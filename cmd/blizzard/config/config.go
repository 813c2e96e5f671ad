// Package config provides configuration parsing for the blizzard forecast
// service.
//
// It handles both command-line flags and environment variables, with
// flags taking precedence over environment variables.
//
// Supported configuration sources (in order of precedence):
//  1. Command-line flags
//  2. Environment variables
//  3. Default values
package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// Config holds all blizzard service configuration.
type Config struct {
	Listen string

	LogFormat string
	LogLevel  string

	Storage       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisTTL      time.Duration

	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string

	// SeriesSource selects where Service.Forecast pulls the series from
	// when a request omits the inline "series" field and carries
	// "history_months" instead: "" (disabled, inline series only),
	// "http", or "prometheus".
	SeriesSource string

	SeriesHTTPURL       string
	SeriesHTTPValuePath string

	SeriesPrometheusURL   string
	SeriesPrometheusQuery string
}

// ParseFlags parses command-line flags and environment variables into a
// Config. Environment variables are used as fallbacks when flags are not
// provided.
func ParseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.Listen, "listen", getEnv("LISTEN", ":8090"), "HTTP listen address")

	flag.StringVar(&cfg.LogFormat, "log-format", getEnv("LOG_FORMAT", "text"), "Log format: text or json")
	flag.StringVar(&cfg.LogLevel, "log-level", getEnv("LOG_LEVEL", "info"), "Log level: debug, info, warn, error")

	flag.StringVar(&cfg.Storage, "storage", getEnv("STORAGE", "memory"), "Cache backend: memory or redis")
	flag.StringVar(&cfg.RedisAddr, "redis-addr", getEnv("REDIS_ADDR", "localhost:6379"), "Redis server address")
	flag.StringVar(&cfg.RedisPassword, "redis-password", getEnv("REDIS_PASSWORD", ""), "Redis password (optional)")
	flag.IntVar(&cfg.RedisDB, "redis-db", getEnvInt("REDIS_DB", 0), "Redis database number")
	flag.DurationVar(&cfg.RedisTTL, "redis-ttl", getEnvDuration("REDIS_TTL", 30*time.Minute), "Forecast cache TTL")

	flag.BoolVar(&cfg.TLSEnabled, "tls-enabled", getEnvBool("TLS_ENABLED", false), "Terminate TLS directly on the HTTP listener")
	flag.StringVar(&cfg.TLSCertFile, "tls-cert-file", getEnv("TLS_CERT_FILE", ""), "TLS certificate file")
	flag.StringVar(&cfg.TLSKeyFile, "tls-key-file", getEnv("TLS_KEY_FILE", ""), "TLS key file")
	flag.StringVar(&cfg.TLSCAFile, "tls-ca-file", getEnv("TLS_CA_FILE", ""), "TLS client CA file for mutual TLS")

	flag.StringVar(&cfg.SeriesSource, "series-source", getEnv("SERIES_SOURCE", ""), "Series collector for requests without an inline series: empty (disabled), http, prometheus")
	flag.StringVar(&cfg.SeriesHTTPURL, "series-http-url", getEnv("SERIES_HTTP_URL", ""), "HTTP endpoint to collect the series from")
	flag.StringVar(&cfg.SeriesHTTPValuePath, "series-http-value-path", getEnv("SERIES_HTTP_VALUE_PATH", ""), "gjson path extracting the monthly value array from the HTTP response")
	flag.StringVar(&cfg.SeriesPrometheusURL, "series-prometheus-url", getEnv("SERIES_PROMETHEUS_URL", ""), "Prometheus server base URL to collect the series from")
	flag.StringVar(&cfg.SeriesPrometheusQuery, "series-prometheus-query", getEnv("SERIES_PROMETHEUS_QUERY", ""), "PromQL query to collect the series from")

	flag.Parse()

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var i int
		if _, err := fmt.Sscanf(value, "%d", &i); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "1" || value == "true" || value == "TRUE"
	}
	return defaultValue
}
