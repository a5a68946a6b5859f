package middleware

import (
	"strconv"
	"time"

	"courtcrowd/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records request counts and latencies by route template.
// Handler errors are rendered here so the recorded status is the one sent to the client.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		labels := []string{c.Request().Method, route, strconv.Itoa(c.Response().Status)}
		metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

		return nil
	}
}
