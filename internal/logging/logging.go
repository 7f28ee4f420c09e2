package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
)

// New builds a slog logger writing to w. Level is one of debug, info, warn, error
// (anything else means info); format "json" selects the JSON handler, anything else text.
func New(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level

	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// FromContext returns the default logger tagged with the chi request id, if any.
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()

	if id := middleware.GetReqID(ctx); id != "" {
		logger = logger.With("request_id", id)
	}

	return logger
}
