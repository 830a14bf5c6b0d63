package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jroosing/domaininfo/internal/api/handlers"
	"github.com/jroosing/domaininfo/internal/api/middleware"
	"github.com/jroosing/domaininfo/internal/config"
)

// RegisterRoutes wires the API endpoints into the engine. Health stays open;
// everything else is behind the API key when one is configured.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	api := r.Group("/api/v1")
	api.GET("/health", h.Health)

	protected := api.Group("")
	if cfg != nil && cfg.API.APIKey != "" {
		protected.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}
	protected.GET("/stats", h.Stats)
	protected.GET("/lookup/:domain", h.Lookup)
}
