package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const headerRequestID = "X-Request-Id"

// Context keys set by the middleware and the handlers.
const (
	ctxRequestID = "request_id"
	ctxMatchID   = "match_id"
	ctxRejected  = "rejected"
)

// RequestIDMiddleware tags the request with the caller's X-Request-Id, or a
// fresh UUID when there is none, and echoes it back.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(headerRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(headerRequestID, id)
			c.Set(ctxRequestID, id)
			return next(c)
		}
	}
}

// LoggingMiddleware writes one line per request. The match the request ran
// against and any engine rejection are attached by the handlers. Health
// checks are logged at debug, server errors at error.
func LoggingMiddleware(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			attrs := []slog.Attr{
				slog.Any("request_id", c.Get(ctxRequestID)),
				slog.String("method", c.Request().Method),
				slog.String("route", c.Path()),
				slog.Int("status", status),
				slog.Int64("latency_ms", time.Since(start).Milliseconds()),
			}
			if id, ok := c.Get(ctxMatchID).(string); ok {
				attrs = append(attrs, slog.String("match_id", id))
			}
			if reason, ok := c.Get(ctxRejected).(string); ok {
				attrs = append(attrs, slog.String("rejected", reason))
			}
			logger.LogAttrs(c.Request().Context(), requestLevel(c.Path(), status), "request", attrs...)
			return nil
		}
	}
}

func requestLevel(route string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case route == "/healthz":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
