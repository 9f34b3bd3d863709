package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"labquote/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts a handler panic into a SYSTEM_001 response so one
// bad quotation request cannot take the whole API down. The panic value and
// stack go to the log under the trace ID; the client only sees the generic
// error.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					traceID := GetTraceID(c)

					slog.Error("panic recovered",
						slog.String("event_type", "panic_recovered"),
						slog.String("trace_id", traceID),
						slog.String("panic", fmt.Sprintf("%v", r)),
						slog.String("method", c.Request().Method),
						slog.String("path", c.Request().URL.Path),
						slog.String("stack", string(debug.Stack())),
					)

					response := errors.NewErrorResponse(errors.SystemInternalError, traceID)
					if err := c.JSON(http.StatusInternalServerError, response); err != nil {
						slog.Error("panic response write failed",
							slog.String("event_type", "panic_response_failed"),
							slog.String("trace_id", traceID),
							slog.String("error", err.Error()),
						)
					}
				}
			}()

			return next(c)
		}
	}
}
