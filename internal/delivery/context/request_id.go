// Package context carries request-scoped values between the delivery layer
// and the layers below it.
package context

import (
	"context"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request ID.
const HeaderXRequestID = "X-Request-Id"

// echoKeyRequestID keys the request ID inside echo.Context storage.
const echoKeyRequestID = "request_id"

// requestIDKey keys the request ID inside context.Context values.
type requestIDKey struct{}

// SetRequestID binds the request ID to the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestID returns the request ID bound to the echo context, or an empty
// string when the request ID middleware has not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a child context carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestIDFromContext returns the request ID carried by ctx, or an empty
// string when there is none.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}

	return ""
}
