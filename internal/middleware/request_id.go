package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Trace propagation keys. Every response carries a trace ID so an error
// reported from the reception desk can be matched to the server log line
// for the same request.
const (
	TraceIDHeader     = "X-Trace-ID"
	TraceIDContextKey = "trace_id"
)

// RequestID resolves the trace ID for a request and mirrors it into the
// response header. An inbound ID from an upstream proxy is kept; otherwise
// one is minted per request.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the trace ID stored on the context, or "" when
// RequestID has not run for this request.
func GetTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}
