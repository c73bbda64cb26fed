package main

import (
	"MovingList/internal/config"
	"MovingList/internal/server"
	"MovingList/internal/session"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func SessionStoreProvider(cfg *config.Configuration) (*session.RedisStore, error) {
	return session.NewRedisStore(cfg.Redis.URL)
}

func main() {
	configPath := flag.String("config", "movinglist.yaml", "path to the server configuration")
	flag.Parse()

	cfg, err := bootstrap(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	srv, err := InitializeServer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}
	defer srv.Close()

	logger := srv.LogService.Log
	if len(cfg.Auth.AllowedEmails) == 0 {
		logger.Warn("auth.allowedEmails is empty, nobody will be able to sign in")
	}
	if err := srv.JanitorService.StartCleanCycle(); err != nil {
		logger.WithError(err).Fatal("Failed to schedule janitor")
	}
	defer srv.JanitorService.StopClean()

	app := server.NewApp(srv, cfg)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down")
		_ = app.Shutdown()
	}()

	if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.WithError(err).Error("Failed to start server")
	}
}

func bootstrap(path string) (*config.Configuration, error) {
	cfg, err := config.LoadConfiguration(path)
	if err != nil {
		return nil, err
	}
	if cfg.Auth.JWTSecret == "" {
		if secret := os.Getenv("MOVINGLIST_JWT_SECRET"); secret != "" {
			cfg.Auth.JWTSecret = secret
		} else {
			return nil, errors.New("auth.jwtSecret must be set")
		}
	}
	return cfg, nil
}
