// Package api is the HTTP transport of the battle server.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/udisondev/turnbattle/internal/data"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Battles BattleService
	Catalog data.Catalog
	Health  map[string]Pinger
}

// Setup creates and configures the Gin router
func Setup(d Deps) *gin.Engine {
	router := gin.New()

	router.Use(RequestID())
	router.Use(Logger())
	router.Use(Recovery())

	health := NewHealthHandler(d.Health)
	router.GET("/healthz", health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	battles := NewBattleHandler(d.Battles)
	catalog := NewCatalogHandler(d.Catalog)

	api := router.Group("/api")
	{
		b := api.Group("/battle")
		b.POST("/start", battles.StartBattle)
		b.POST("/batch", battles.StartBatch)
		b.GET("/history/:playerId", battles.History)
		b.GET("/:battleId", battles.GetBattle)

		api.GET("/catalog/skills", catalog.ListSkills)
	}

	return router
}
