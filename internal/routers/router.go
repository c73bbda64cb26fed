package routers

import (
	"MovingList/cmd"
	"MovingList/internal/metrics"
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers public routes first; everything added after the
// session middleware requires a bearer token.
func SetupRoutes(app *fiber.App, server *cmd.Server) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", metrics.Handler())
	SetupAuthRouter(app, server)

	api := app.Group("", server.AuthHandler.RequireSession)
	SetupSessionRouter(api, server)
	SetupBoxRouter(api, server)
	SetupItemRouter(api, server)
	SetupJanitorRouter(api, server)
}
