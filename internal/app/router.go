package app

import (
	"github.com/gin-gonic/gin"

	"github.com/meettonyg/guestify-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:       "guestify-backend",
		AllowOrigins:      cfg.AllowOrigins,
		AuthMiddleware:    middlewareset.Auth,
		ContentHandler:    handlerset.Content,
		GenerationHandler: handlerset.Generation,
	})
}
