package api

import (
	"github.com/buildingbigthings/PromptProducer/config"
	"github.com/buildingbigthings/PromptProducer/internal/api/generation"
	"github.com/buildingbigthings/PromptProducer/internal/api/health"
	"github.com/buildingbigthings/PromptProducer/internal/api/history"
	templateRoutes "github.com/buildingbigthings/PromptProducer/internal/api/templates"
	"github.com/buildingbigthings/PromptProducer/internal/database"
	"github.com/buildingbigthings/PromptProducer/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	apiGroup := router.Group("/api")
	{
		health.RegisterRoutes(apiGroup)
		templateRoutes.RegisterRoutes(apiGroup)
		generation.RegisterRoutes(apiGroup, cfg)
		history.RegisterRoutes(apiGroup)
	}

	return router, nil
}
