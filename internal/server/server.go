package server

import (
	"MovingList/cmd"
	"MovingList/internal/config"
	"MovingList/internal/metrics"
	"MovingList/internal/routers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func NewApp(server *cmd.Server, cfg *config.Configuration) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:   cfg.Server.RequestConfig.SizeLimit * 1024 * 1024,
		Concurrency: cfg.Server.Concurrency * 1024,
		AppName:     "MovingList",
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Output: server.LogService.Log.Writer(),
	}))
	app.Use(metrics.Middleware())

	routers.SetupRoutes(app, server)
	return app
}
