package logging

import (
	"context"
	"log/slog"
	"os"
)

// ContextKey types the keys this package reads from a request context.
type ContextKey string

const (
	// RequestIDKey carries the per-request correlation ID.
	RequestIDKey ContextKey = "request_id"
	// VendorIDKey carries the authenticated vendor's ID.
	VendorIDKey ContextKey = "vendor_id"
)

// contextFields maps context keys to the attribute names they log as.
var contextFields = map[ContextKey]string{
	RequestIDKey: "request_id",
	VendorIDKey:  "vendor_id",
}

// Logger is a slog.Logger that can enrich records with request-scoped
// fields pulled from a context.
type Logger struct {
	*slog.Logger
}

// New builds a logger writing to stdout. Format "json" selects the
// JSON handler, anything else falls back to text.
func New(level slog.Level, format string) *Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// WithContext returns a logger carrying whichever known fields are
// present on ctx.
func (l *Logger) WithContext(ctx context.Context) *slog.Logger {
	logger := l.Logger

	for key, attr := range contextFields {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			logger = logger.With(attr, v)
		}
	}

	return logger
}

func (l *Logger) InfoCtx(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).Info(msg, args...)
}

func (l *Logger) ErrorCtx(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).Error(msg, args...)
}

func (l *Logger) WarnCtx(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).Warn(msg, args...)
}

// ParseLevel maps a level name to its slog.Level, defaulting to info
// for anything unrecognized.
func ParseLevel(level string) slog.Level {
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
