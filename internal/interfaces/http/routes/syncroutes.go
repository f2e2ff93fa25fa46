package routes

import (
	"github.com/gin-gonic/gin"

	"pulseboard/internal/interfaces/http/handlers"
	"pulseboard/internal/interfaces/http/middleware"
	"pulseboard/internal/shared/authorization"
)

// SyncRouteConfig holds dependencies for sync trigger and status routes.
type SyncRouteConfig struct {
	SyncHandler       *handlers.SyncHandler
	AuthMiddleware    *middleware.AuthMiddleware
	TenancyMiddleware *middleware.TenancyMiddleware
}

// SetupSyncRoutes configures the sync routes. Triggering and inspecting
// syncs is admin-only; the data it writes is shared across all tenants.
func SetupSyncRoutes(engine *gin.Engine, cfg *SyncRouteConfig) {
	sync := engine.Group("/sync")
	sync.Use(cfg.AuthMiddleware.RequireAuth(), cfg.TenancyMiddleware.Resolve(), authorization.RequireAdmin())
	{
		sync.POST("", cfg.SyncHandler.Trigger)
		sync.GET("/status", cfg.SyncHandler.GetStatus)
		sync.GET("/tasks/:id", cfg.SyncHandler.GetTask)
	}
}
