// Package context carries the request ID and the request-scoped logger
// through echo and context.Context so handlers and services log under the
// same correlation id.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey keeps our context values from colliding with other packages'.
type ContextKey string

const (
	// KeyRequestID stores the correlation id of the request.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger stores the request-scoped slog logger.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the header the id is read from and echoed back on.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request id stored on the echo context, minting a
// fresh UUID when none was set.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithRequestID returns a context carrying the request id, so layers below
// the delivery can correlate their logs.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// WithLogger returns a context carrying the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// Logger returns the request-scoped logger from the context, or fallback
// when the request never passed through the request-id middleware.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return fallback
}
