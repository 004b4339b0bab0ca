// Package context carries per-request values between the echo handlers,
// the contact services and the event worker.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key of the request id in echo.Context and context.Context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key of the request-scoped logger.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is echoed back on API responses and forwarded on contact events.
	HeaderXRequestID = "X-Request-Id"
)

// BindRequest stores requestID and a child of base tagged with it in ctx.
// Both the API middleware and the push worker use it, so service logs and
// the contact events they publish share one id.
func BindRequest(ctx context.Context, base *slog.Logger, requestID string) (context.Context, *slog.Logger) {
	reqLogger := base.With(slog.String("request_id", requestID))
	ctx = WithRequestID(ctx, requestID)
	ctx = WithLogger(ctx, reqLogger)

	return ctx, reqLogger
}

// GetRequestID returns the id of the current API request. It falls back to
// the id bound to the request context, then to a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the bound request id or "".
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
