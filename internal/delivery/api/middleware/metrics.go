package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPObserver records one finished request.
type HTTPObserver interface {
	ObserveHTTPRequest(method, path string, status int, elapsed time.Duration)
}

// MetricsMiddleware records request latency by route pattern.
type MetricsMiddleware struct {
	observer HTTPObserver
}

// NewMetricsMiddleware creates the HTTP metrics middleware.
func NewMetricsMiddleware(observer HTTPObserver) *MetricsMiddleware {
	return &MetricsMiddleware{observer: observer}
}

// Handle observes every request. Errors are rendered here so the recorded status is the one sent;
// the error handler skips responses that are already committed.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		m.observer.ObserveHTTPRequest(c.Request().Method, path, c.Response().Status, time.Since(start))

		return err
	}
}
