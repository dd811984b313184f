package api

import (
	"github.com/gin-gonic/gin"

	"profilecheck/internal/app"
	"profilecheck/internal/config"
)

// NewRouter wires the HTTP surface. Route layout:
//
//	/api/v1/profiles            profile acquisition + dump
//	/api/v1/status              fetcher + cache snapshot
//	/api/v1/cache               management surface
//	/api/v1/settings            display-toggle object
//	/health                     liveness
func NewRouter(cfg *config.Config, svc *app.Service) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(Logger())
	router.Use(gin.Recovery())
	router.Use(CORS(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowedHeaders,
	))

	h := NewProfileHandler(svc)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/profiles", h.ListProfiles)
		v1.POST("/profiles/batch", h.BatchProfiles)
		v1.POST("/profiles/cached", h.GetCachedBatch)
		v1.GET("/profiles/:username", h.GetProfile)
		v1.GET("/profiles/:username/cached", h.GetCachedProfile)
		v1.POST("/profiles/:username/scraped", h.StoreScraped)

		v1.GET("/status", h.GetStatus)

		v1.GET("/cache/stats", h.GetCacheStats)
		v1.GET("/cache/export", h.ExportCache)
		v1.POST("/cache/import", h.ImportCache)
		v1.DELETE("/cache", h.ClearCache)

		v1.GET("/settings", h.GetSettings)
		v1.PATCH("/settings", h.PatchSettings)
	}

	router.GET("/health", h.HealthCheck)

	return router
}
