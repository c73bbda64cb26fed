package routers

import (
	"MovingList/cmd"
	"github.com/gofiber/fiber/v2"
)

// SetupAuthRouter registers the sign-in endpoints that work without a session.
func SetupAuthRouter(router fiber.Router, server *cmd.Server) {
	authHandler := server.AuthHandler
	router.Post("/auth/otp", authHandler.RequestOTP)
	router.Post("/auth/verify", authHandler.Verify)
	router.Get("/auth/callback", authHandler.Callback)
}

func SetupSessionRouter(router fiber.Router, server *cmd.Server) {
	authHandler := server.AuthHandler
	router.Get("/auth/session", authHandler.Session)
	router.Post("/auth/logout", authHandler.Logout)
}
