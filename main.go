package main

import (
	"time"

	"game-catalog/config"
	"game-catalog/database"
	routes "game-catalog/internal/app/http"
	"game-catalog/internal/app/http/middleware"
	"game-catalog/internal/infra/logging"
	"game-catalog/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := logging.Setup(logging.Options{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		File:      cfg.LogFile,
		MaxSizeMB: cfg.LogFileMaxMB,
	})

	db, err := database.OpenAndMigrate(cfg.DBURL, logger.GetLevel() <= zerolog.DebugLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open the catalog database")
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// CORS goes in before the routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: cfg.CORSOrigin != "*",
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, store.New(db))

	log.Info().Str("port", cfg.Port).Msg("Game catalog listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
