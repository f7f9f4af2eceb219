package logger

import (
	"log/slog"
	"os"

	"github.com/fundflow/collection-service/internal/config"
)

// Setup installs the process-wide slog default from log_config.
func Setup(cfg config.LogConfig) {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	out := os.Stdout
	if cfg.LogOutput == "stderr" {
		out = os.Stderr
	}

	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))
}
