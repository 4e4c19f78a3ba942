package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ContextKey is the type for echo context keys
type ContextKey string

const (
	// RequestIDKey holds the request id in the echo context
	RequestIDKey ContextKey = "request_id"
)

// RequestLogger assigns an X-Request-ID when the client sent none, echoes it
// back and logs one line per request once the error handler has run
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			res.Header().Set(echo.HeaderXRequestID, id)
			c.Set(string(RequestIDKey), id)

			start := time.Now()
			err := next(c)
			if err != nil {
				// Let the HTTPErrorHandler write the response so the status is final
				c.Error(err)
			}

			fields := []zap.Field{
				zap.String("request_id", id),
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", res.Status),
				zap.Int64("bytes_out", res.Size),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote_ip", c.RealIP()),
			}
			switch {
			case res.Status >= 500:
				logger.Error("http.request", fields...)
			case res.Status >= 400:
				logger.Warn("http.request", fields...)
			default:
				logger.Info("http.request", fields...)
			}

			return nil
		}
	}
}

// GetRequestID returns the id assigned by RequestLogger
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(RequestIDKey)).(string)
	return id
}
