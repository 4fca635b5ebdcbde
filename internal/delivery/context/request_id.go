// Package context propagates request-scoped values from the HTTP delivery
// into the notification services: the request id and a logger tagged with it.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key under which the request id travels.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key under which the request-scoped logger travels.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the HTTP header carrying the request id.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID stores the request id in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request id from a standard
// context.Context. Dispatches that did not come through the HTTP delivery
// get an empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context carrying the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault extracts the request-scoped logger. Callers outside an
// HTTP request, such as startup hooks, fall back to the service logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return fallback
}

// WithLogger returns a new context carrying the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
