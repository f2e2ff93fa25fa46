package routes

import (
	"github.com/gin-gonic/gin"

	"pulseboard/internal/interfaces/http/handlers"
	"pulseboard/internal/interfaces/http/middleware"
)

// DashboardRouteConfig holds dependencies for the data-facing routes:
// dashboard aggregates, tickets, and live assets. Everything here runs
// with the tenancy middleware so handlers always see a restriction set.
type DashboardRouteConfig struct {
	DashboardHandler  *handlers.DashboardHandler
	TicketHandler     *handlers.TicketHandler
	AssetHandler      *handlers.AssetHandler
	AuthMiddleware    *middleware.AuthMiddleware
	TenancyMiddleware *middleware.TenancyMiddleware
}

// SetupDashboardRoutes configures the tenant-scoped reporting routes.
func SetupDashboardRoutes(engine *gin.Engine, cfg *DashboardRouteConfig) {
	scoped := engine.Group("/")
	scoped.Use(cfg.AuthMiddleware.RequireAuth(), cfg.TenancyMiddleware.Resolve())
	{
		scoped.GET("/dashboard/stats", cfg.DashboardHandler.GetStats)
		scoped.GET("/clients", cfg.DashboardHandler.ListClients)

		scoped.GET("/tickets/stats", cfg.TicketHandler.GetStats)
		scoped.POST("/tickets/monthly-stats", cfg.TicketHandler.GetMonthlyStats)

		scoped.GET("/servers", cfg.AssetHandler.ListServers)
		scoped.GET("/workstations", cfg.AssetHandler.ListWorkstations)
		scoped.GET("/domains", cfg.AssetHandler.ListDomains)
	}
}
