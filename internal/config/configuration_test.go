package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movinglist.yaml")
	content := `
server:
  port: 9090
  cleanConfig:
    schedule: "@hourly"
    retention: 48h
database:
  driver: sqlite
  dsn: "file::memory:"
auth:
  allowedEmails:
    - Someone@Example.com
  jwtSecret: secret
  sessionTTL: 1h
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfiguration(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "@hourly", cfg.Server.CleanConfig.Schedule)
	assert.Equal(t, 48*time.Hour, cfg.Server.CleanConfig.Retention)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, []string{"Someone@Example.com"}, cfg.Auth.AllowedEmails)
	assert.Equal(t, time.Hour, cfg.Auth.SessionTTL)
	// untouched keys keep their defaults
	assert.Equal(t, 15*time.Minute, cfg.Auth.LoginTokenTTL)
	assert.Equal(t, "info", cfg.Server.LogConfig.Level)
	assert.Equal(t, 256, cfg.Server.Concurrency)
}

func TestLoadConfiguration_MissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestAuthConfig_Redirects(t *testing.T) {
	auth := Default().Auth
	assert.Equal(t, []string{"http://localhost:8080/auth/callback"}, auth.Redirects())

	auth.AllowedRedirects = []string{"https://boxes.example.com"}
	assert.Equal(t, []string{"https://boxes.example.com"}, auth.Redirects())

	assert.Empty(t, AuthConfig{}.Redirects())
}
