// Package client talks to the MovingList server. It implements the remote
// store and identity provider used by the inventory package.
package client

import (
	"MovingList/internal/inventory"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrUnauthorized is returned when the server rejects the stored session.
var ErrUnauthorized = errors.New("not signed in")

// APIError carries a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server answered %d", e.Status)
	}
	return fmt.Sprintf("server answered %d: %s", e.Status, e.Message)
}

type Config struct {
	ServerURL   string
	SessionFile string
	Timeout     time.Duration
}

type Client struct {
	baseURL     string
	timeout     time.Duration
	sessionFile string
	log         logrus.FieldLogger

	mu        sync.Mutex
	session   *inventory.Session
	listeners map[int]func(inventory.SessionEvent)
	nextID    int
}

var (
	_ inventory.RemoteStore      = (*Client)(nil)
	_ inventory.IdentityProvider = (*Client)(nil)
)

// New restores a previously saved session from cfg.SessionFile, if any.
func New(cfg Config, log logrus.FieldLogger) (*Client, error) {
	if cfg.ServerURL == "" {
		return nil, errors.New("server url is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	c := &Client{
		baseURL:     strings.TrimRight(cfg.ServerURL, "/"),
		timeout:     cfg.Timeout,
		sessionFile: cfg.SessionFile,
		log:         log,
		listeners:   map[int]func(inventory.SessionEvent){},
	}
	sess, err := loadSession(cfg.SessionFile)
	if err != nil {
		return nil, err
	}
	c.session = sess
	return c, nil
}

func (c *Client) accessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return ""
	}
	return c.session.AccessToken
}

// do sends one request and decodes a 2xx JSON answer into out.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	agent := fiber.AcquireAgent()
	req := agent.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	agent.Timeout(c.timeout)
	token := ""
	if !publicPath(path) {
		token = c.accessToken()
	}
	if token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	if body != nil {
		agent.JSON(body)
	}
	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	code, respBody, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%s %s: %w", method, path, errors.Join(errs...))
	}
	c.log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": code,
	}).Debug("request done")

	if code >= 200 && code < 300 {
		if out == nil || len(respBody) == 0 {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
		return nil
	}
	return c.statusError(code, respBody, token != "")
}

// publicPath reports routes the server serves without a session.
func publicPath(path string) bool {
	return strings.HasPrefix(path, "/auth/otp") || strings.HasPrefix(path, "/auth/verify")
}

// statusError maps a failed answer onto the inventory error kinds. A 401 for
// a request that carried the session means the session is gone.
func (c *Client) statusError(code int, body []byte, sentSession bool) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &payload)
	apiErr := &APIError{Status: code, Message: payload.Error}

	switch code {
	case fiber.StatusUnauthorized:
		if sentSession {
			c.dropSession()
		}
		return fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
	case fiber.StatusNotFound:
		return fmt.Errorf("%w: %w", inventory.ErrNotFound, apiErr)
	case fiber.StatusBadRequest:
		return fmt.Errorf("%w: %w", inventory.ErrValidation, apiErr)
	case fiber.StatusForbidden:
		return fmt.Errorf("%w: %w", inventory.ErrAuthorization, apiErr)
	}
	return apiErr
}
