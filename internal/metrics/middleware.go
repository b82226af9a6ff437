package metrics

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// FiberMiddleware records request count, latency and in-flight requests.
// The endpoint label is the matched route template, so /v1/services/:id
// does not explode into one series per identifier. Requests that match no
// route share the "unmatched" label.
func FiberMiddleware(c *Collector) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		method := ctx.Method()
		c.requestStarted(method)
		start := time.Now()

		// A panicking handler is recorded as a 500 and the panic is re-raised
		// for the recover middleware.
		defer func() {
			r := recover()

			status := ctx.Response().StatusCode()
			switch {
			case r != nil:
				status = fiber.StatusInternalServerError
			case err != nil:
				status = fiber.StatusInternalServerError
				var fe *fiber.Error
				if errors.As(err, &fe) {
					status = fe.Code
				}
			}

			endpoint := "unmatched"
			if rt := ctx.Route(); rt != nil && rt.Path != "" && rt.Path != "/" {
				endpoint = rt.Path
			}

			c.requestFinished(method, endpoint, status, time.Since(start))
			if r != nil {
				panic(r)
			}
		}()

		return ctx.Next()
	}
}

// Handler serves the registry in the Prometheus text format.
func Handler(reg *prometheus.Registry) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{
		Registry: reg,
	}))
}
