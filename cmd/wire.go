package cmd

import (
	"MovingList/database"
	"MovingList/internal/handlers"
	"MovingList/internal/services"
	"MovingList/internal/session"
	"gorm.io/gorm"
)

type Server struct {
	BoxService     services.BoxService
	BoxHandler     *handlers.BoxHandler
	ItemService    services.ItemService
	ItemHandler    *handlers.ItemHandler
	AuthService    services.AuthService
	AuthHandler    *handlers.AuthHandler
	LogService     services.LogService
	JanitorService *services.Janitor
	SessionStore   *session.RedisStore
	DB             *gorm.DB
}

func NewServer(
	boxService services.BoxService,
	boxHandler *handlers.BoxHandler,
	itemService services.ItemService,
	itemHandler *handlers.ItemHandler,
	authService services.AuthService,
	authHandler *handlers.AuthHandler,
	logService services.LogService,
	janitorService *services.Janitor,
	sessionStore *session.RedisStore,
	db *gorm.DB,
) *Server {
	return &Server{
		BoxService:     boxService,
		BoxHandler:     boxHandler,
		ItemService:    itemService,
		ItemHandler:    itemHandler,
		AuthService:    authService,
		AuthHandler:    authHandler,
		LogService:     logService,
		JanitorService: janitorService,
		SessionStore:   sessionStore,
		DB:             db,
	}
}

// Close releases the redis connection pool and the database handle.
func (s *Server) Close() {
	if err := s.SessionStore.Close(); err != nil {
		s.LogService.Log.WithError(err).Warn("closing session store")
	}
	database.CloseDatabase(s.DB)
}
