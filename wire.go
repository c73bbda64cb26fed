//go:build wireinject
// +build wireinject

package main

import (
	"MovingList/cmd"
	"MovingList/database"
	"MovingList/internal/config"
	"MovingList/internal/handlers"
	"MovingList/internal/repository"
	"MovingList/internal/services"
	"MovingList/internal/session"
	"github.com/google/wire"
)

func InitializeServer(cfg *config.Configuration) (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		services.NewBoxService,
		handlers.NewBoxHandler,
		repository.NewBoxRepository,
		services.NewItemService,
		handlers.NewItemHandler,
		repository.NewItemRepository,
		services.NewAuthService,
		handlers.NewAuthHandler,
		services.NewMailService,
		database.SetupDatabase,
		services.NewLogService,
		services.NewJanitorService,
		SessionStoreProvider,
		wire.Bind(new(session.Store), new(*session.RedisStore)),
	)
	return nil, nil
}
