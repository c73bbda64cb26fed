package client

import (
	"net"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// startStub serves every request with handler.
func startStub(t *testing.T, handler fiber.Handler) string {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(handler)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "http://" + ln.Addr().String()
}
