package handlers

import (
	"MovingList/internal/dto"
	"MovingList/internal/services"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const sessionLocal = "session"

type AuthHandler struct {
	service services.AuthService
}

func NewAuthHandler(service services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RequestOTP mails a single-use sign-in link to an allow-listed address.
func (h *AuthHandler) RequestOTP(c *fiber.Ctx) error {
	var req struct {
		Email      string `json:"email"`
		RedirectTo string `json:"redirect_to"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	if err := h.service.RequestLogin(c.UserContext(), req.Email, req.RedirectTo); err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusAccepted).JSON(map[string]interface{}{})
}

func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	sess, err := h.service.Verify(c.UserContext(), req.Token)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SessionDTO{
		AccessToken: sess.AccessToken,
		Email:       sess.Email,
		ExpiresAt:   sess.ExpiresAt,
	})
}

// Callback is the default landing page of a mailed link. It leaves the token
// unconsumed so the owner can paste it into the command line client.
func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		return c.Status(http.StatusBadRequest).SendString("missing token")
	}
	return c.SendString(fmt.Sprintf("Finish signing in with:\n\n    movinglist verify %s\n", token))
}

func (h *AuthHandler) Session(c *fiber.Ctx) error {
	sess := CurrentSession(c)
	return c.JSON(dto.SessionDTO{
		Email:     sess.Email,
		ExpiresAt: sess.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess := CurrentSession(c)
	if err := h.service.Logout(c.UserContext(), sess.AccessToken); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// RequireSession rejects requests that do not carry a live bearer token.
func (h *AuthHandler) RequireSession(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": "missing bearer token"})
	}

	sess, err := h.service.Authenticate(c.UserContext(), strings.TrimSpace(token))
	if err != nil {
		return respondError(c, err)
	}
	c.Locals(sessionLocal, sess)
	return c.Next()
}

// CurrentSession returns the session stored by RequireSession.
func CurrentSession(c *fiber.Ctx) *services.Session {
	sess, _ := c.Locals(sessionLocal).(*services.Session)
	return sess
}
