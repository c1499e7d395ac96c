package routes

import (
	gamesapi "game-catalog/internal/api/games"
	pricingapi "game-catalog/internal/api/pricing"
	registryapi "game-catalog/internal/api/registry"
	salesapi "game-catalog/internal/api/sales"
	"game-catalog/internal/app/http/middleware"
	"game-catalog/internal/domain/catalog"
	"game-catalog/internal/store"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, st *store.Store) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.SanitizeQueryMiddleware())

	// Reference data
	for _, kind := range []catalog.Kind{catalog.KindDeveloper, catalog.KindGenre, catalog.KindPlatform} {
		h := registryapi.New(st, kind)
		group := api.Group("/" + string(kind))
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}

	games := gamesapi.New(st)
	api.GET("/game", games.List)
	api.GET("/game/:id", games.Get)
	api.GET("/game/:id/revenue", games.Revenue)
	api.POST("/game", games.Create)
	api.PATCH("/game/:id", games.Update)
	api.DELETE("/game/:id", games.Delete)

	pricing := pricingapi.New(st)
	api.GET("/pricing", pricing.List)
	api.GET("/pricing/:game_id", pricing.Get)
	api.POST("/pricing/:game_id", pricing.Create)
	api.PATCH("/pricing/:game_id", pricing.Update)
	api.DELETE("/pricing/:game_id", pricing.Delete)

	sales := salesapi.New(st)
	api.GET("/sales", sales.List)
	api.GET("/sales/:game_id", sales.Get)
	api.POST("/sales/:game_id", sales.Create)
	api.PATCH("/sales/:game_id", sales.Update)
	api.DELETE("/sales/:game_id", sales.Delete)
}
