// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "movinglist",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status code.",
	}, []string{"method", "route", "status"})

	StoreWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "movinglist",
		Name:      "store_writes_total",
		Help:      "Successful writes to the box and item collections.",
	}, []string{"entity", "op"})

	SignInRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "movinglist",
		Name:      "sign_in_requests_total",
		Help:      "Passwordless sign-in requests by outcome.",
	}, []string{"outcome"})

	JanitorPurged = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "movinglist",
		Name:      "janitor_purged_total",
		Help:      "Soft-deleted rows removed by the janitor.",
	}, []string{"entity"})
)

// Middleware counts every request once the handler chain has returned.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		HTTPRequests.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).Inc()
		return err
	}
}

func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
