// Package logger constructs the service's *slog.Logger from configuration,
// choosing a text or JSON handler and a level the way every ambient
// service in this family does.
package logger

import (
	"log/slog"
	"os"

	"github.com/blizzardcast/blizzard/cmd/blizzard/config"
)

// New builds a *slog.Logger from cfg.LogFormat ("text" or "json") and
// cfg.LogLevel ("debug", "info", "warn", "error"). Unrecognized values
// fall back to text/info rather than failing startup.
func New(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
