package client

import (
	"MovingList/internal/inventory"
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Session asks the server whether the saved token is still live. A rejected
// token is forgotten and reported as no session.
func (c *Client) Session(ctx context.Context) (*inventory.Session, error) {
	if c.accessToken() == "" {
		return nil, nil
	}

	var current inventory.Session
	err := c.do(ctx, fiber.MethodGet, "/auth/session", nil, &current)
	if errors.Is(err, ErrUnauthorized) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil, nil
	}
	sess := *c.session
	return &sess, nil
}

func (c *Client) SignInWithOTP(ctx context.Context, email, redirectTo string) error {
	body := map[string]string{"email": email, "redirect_to": redirectTo}
	return c.do(ctx, fiber.MethodPost, "/auth/otp", body, nil)
}

// Verify exchanges the token from a mailed sign-in link for a session and
// saves it for later runs.
func (c *Client) Verify(ctx context.Context, token string) (*inventory.Session, error) {
	var sess inventory.Session
	if err := c.do(ctx, fiber.MethodPost, "/auth/verify", map[string]string{"token": token}, &sess); err != nil {
		return nil, err
	}
	if err := saveSession(c.sessionFile, &sess); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.session = &sess
	c.mu.Unlock()

	c.emit(inventory.SessionEvent{Kind: inventory.SignedIn, Session: &sess})
	return &sess, nil
}

// SignOut revokes the session on the server and forgets it locally. A
// session the server already rejects counts as signed out.
func (c *Client) SignOut(ctx context.Context) error {
	if c.accessToken() == "" {
		return nil
	}
	err := c.do(ctx, fiber.MethodPost, "/auth/logout", nil, nil)
	if err != nil && !errors.Is(err, ErrUnauthorized) {
		return err
	}
	c.dropSession()
	return nil
}

func (c *Client) OnSessionChange(fn func(inventory.SessionEvent)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// dropSession forgets the session and notifies listeners once.
func (c *Client) dropSession() {
	c.mu.Lock()
	had := c.session != nil
	c.session = nil
	c.mu.Unlock()

	if err := removeSession(c.sessionFile); err != nil {
		c.log.WithError(err).Warn("failed to remove session file")
	}
	if had {
		c.emit(inventory.SessionEvent{Kind: inventory.SignedOut})
	}
}

// emit calls listeners outside the lock so they may use the client.
func (c *Client) emit(event inventory.SessionEvent) {
	c.mu.Lock()
	fns := make([]func(inventory.SessionEvent), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(event)
	}
}

func saveSession(path string, sess *inventory.Session) error {
	if path == "" {
		return nil
	}
	if err := writeSessionFile(path, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
