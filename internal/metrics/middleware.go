package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HTTPMiddleware records request counts, durations and in-flight gauge
// for every route. Route path is used instead of the raw URL so that
// parameterized paths do not explode label cardinality.
func HTTPMiddleware(m *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		status := strconv.Itoa(c.Response().StatusCode())
		m.RecordHTTPRequest(c.Method(), path, status, time.Since(start))

		return err
	}
}
