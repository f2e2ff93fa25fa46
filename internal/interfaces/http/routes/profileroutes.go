package routes

import (
	"github.com/gin-gonic/gin"

	"pulseboard/internal/interfaces/http/handlers"
	"pulseboard/internal/interfaces/http/middleware"
)

// ProfileRouteConfig holds dependencies for the caller's own profile
// and session-scope actions.
type ProfileRouteConfig struct {
	ProfileHandler *handlers.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupProfileRoutes configures profile and impersonation routes. These
// only need authentication; authorization decisions live inside the use
// cases since they depend on the real (not impersonated) profile.
func SetupProfileRoutes(engine *gin.Engine, cfg *ProfileRouteConfig) {
	profile := engine.Group("/profile")
	profile.Use(cfg.AuthMiddleware.RequireAuth())
	{
		profile.GET("", cfg.ProfileHandler.GetProfile)
		profile.POST("/switch-company", cfg.ProfileHandler.SwitchCompany)
		profile.POST("/impersonate/:userId", cfg.ProfileHandler.StartImpersonation)
		profile.POST("/stop-impersonation", cfg.ProfileHandler.StopImpersonation)
	}
}
