package client

import (
	"MovingList/cmd"
	"MovingList/database"
	"MovingList/internal/config"
	"MovingList/internal/handlers"
	"MovingList/internal/repository"
	"MovingList/internal/server"
	"MovingList/internal/services"
	"MovingList/internal/session"
	"context"
	"io"
	"net"
	"net/url"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type linkRecorder struct {
	mu   sync.Mutex
	link string
}

func (r *linkRecorder) SendLoginLink(_ context.Context, _, link string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.link = link
	return nil
}

func (r *linkRecorder) token(t *testing.T) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	parsed, err := url.Parse(r.link)
	require.NoError(t, err)
	return parsed.Query().Get("token")
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// startServer runs the full server stack on a loopback port.
func startServer(t *testing.T) (string, *linkRecorder) {
	cfg := config.Default()
	cfg.Database = config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"}
	cfg.Auth.AllowedEmails = []string{"owner@example.com"}
	cfg.Auth.JWTSecret = "test-secret"

	mr := miniredis.RunT(t)
	store, err := session.NewRedisStore("redis://" + mr.Addr())
	require.NoError(t, err)
	db, err := database.SetupDatabase(cfg)
	require.NoError(t, err)

	logService := services.LogService{Log: discardLogger()}
	mail := &linkRecorder{}
	boxRepo := repository.NewBoxRepository(db)
	itemRepo := repository.NewItemRepository(db)
	boxService := services.NewBoxService(boxRepo)
	itemService := services.NewItemService(itemRepo, boxRepo)
	authService := services.NewAuthService(store, mail, cfg, logService)
	srv := cmd.NewServer(
		boxService, handlers.NewBoxHandler(boxService),
		itemService, handlers.NewItemHandler(itemService),
		authService, handlers.NewAuthHandler(authService),
		logService,
		services.NewJanitorService(itemRepo, boxRepo, logService, cfg),
		store, db,
	)
	app := server.NewApp(srv, cfg)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() {
		_ = app.Shutdown()
		srv.Close()
	})

	return "http://" + ln.Addr().String(), mail
}

func newTestClient(t *testing.T, serverURL string) *Client {
	c, err := New(Config{
		ServerURL:   serverURL,
		SessionFile: filepath.Join(t.TempDir(), "session.json"),
		Timeout:     5 * time.Second,
	}, discardLogger())
	require.NoError(t, err)
	return c
}

func signIn(t *testing.T, c *Client, mail *linkRecorder) {
	ctx := context.Background()
	require.NoError(t, c.SignInWithOTP(ctx, "owner@example.com", ""))
	_, err := c.Verify(ctx, mail.token(t))
	require.NoError(t, err)
}
