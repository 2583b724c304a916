package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/petetru/careermap-backend/internal/http/handlers"
	"github.com/petetru/careermap-backend/internal/http/middleware"
	"github.com/petetru/careermap-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log              *logger.Logger
	CareerMapHandler *handlers.CareerMapHandler
	HealthHandler    *handlers.HealthHandler
	EnableTracing    bool
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.EnableTracing {
		router.Use(otelgin.Middleware("careermap-backend"))
	}
	router.Use(middleware.CORS())
	router.Use(middleware.SessionID())
	router.Use(middleware.RequestLogger(cfg.Log))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/catalog", cfg.CareerMapHandler.GetCatalog)
		api.GET("/session", cfg.CareerMapHandler.GetSession)
		api.POST("/career-map", cfg.CareerMapHandler.Generate)
		api.GET("/career-map", cfg.CareerMapHandler.Get)
		api.GET("/career-map/details", cfg.CareerMapHandler.Details)
		api.DELETE("/career-map", cfg.CareerMapHandler.Clear)
	}

	return router
}
