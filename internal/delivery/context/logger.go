package context

import (
	"context"
	"log/slog"
)

// loggerKey keys the request-scoped logger inside context.Context values.
type loggerKey struct{}

// WithLogger returns a child context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLoggerOrDefault returns the request-scoped logger carried by ctx. When
// no middleware put one there, the fallback is returned so callers can log
// unconditionally.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}

	return fallback
}
