package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/meettonyg/guestify-backend/internal/handlers"
	"github.com/meettonyg/guestify-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName       string
	AllowOrigins      []string
	AuthMiddleware    *middleware.AuthMiddleware
	ContentHandler    *handlers.ContentHandler
	GenerationHandler *handlers.GenerationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware(cfg.ServiceName))

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)

	// ===============
	// || Protected ||
	// ===============
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())
	// Content
	api.GET("/records/:id/groups/:group", cfg.ContentHandler.GetGroup)
	api.PUT("/records/:id/groups/:group", cfg.ContentHandler.SaveGroup)
	// Generation
	api.POST("/records/:id/generate/topics", cfg.GenerationHandler.GenerateTopics)
	api.POST("/records/:id/generate/questions", cfg.GenerationHandler.GenerateQuestions)
	api.POST("/records/:id/generate/biography", cfg.GenerationHandler.GenerateBiography)
	api.POST("/records/:id/generate/hook", cfg.GenerationHandler.GenerateAuthorityHook)

	return router
}
