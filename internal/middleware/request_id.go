package middleware

import (
	"context"

	"subscription-tracker/internal/handlers"
	"subscription-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader is the header name for the trace ID
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the echo context key for the trace ID
	TraceIDContextKey = handlers.TraceIDContextKey
)

const maxTraceIDLength = 64

// RequestID assigns each request a trace id. A well-formed incoming
// X-Trace-ID is kept so a client can correlate its own logs; anything else is
// replaced. The id is echoed in the response header and copied into the
// request context so services can attach it to audit entries.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if !validTraceID(traceID) {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), models.RequestIDContextKey, traceID)))
			return next(c)
		}
	}
}

// validTraceID accepts ids made of letters, digits, '-', '_' and '.'
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}

// GetTraceID returns the trace id set by RequestID, or ""
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
