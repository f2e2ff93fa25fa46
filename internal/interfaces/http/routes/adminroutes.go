package routes

import (
	"github.com/gin-gonic/gin"

	"pulseboard/internal/interfaces/http/handlers"
	"pulseboard/internal/interfaces/http/middleware"
	"pulseboard/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	AdminHandler      *handlers.AdminHandler
	AuthMiddleware    *middleware.AuthMiddleware
	TenancyMiddleware *middleware.TenancyMiddleware
}

// SetupAdminRoutes configures company, user, and mapping management.
// The admin gate keys on the real authenticated profile, so these stay
// reachable for a super admin even mid-impersonation.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.TenancyMiddleware.Resolve(), authorization.RequireAdmin())
	{
		admin.POST("/companies", cfg.AdminHandler.CreateCompany)
		admin.GET("/companies", cfg.AdminHandler.ListCompanies)
		admin.PUT("/companies/:id", cfg.AdminHandler.UpdateCompany)
		admin.DELETE("/companies/:id", cfg.AdminHandler.DeleteCompany)

		admin.GET("/users", cfg.AdminHandler.ListUsers)
		admin.PUT("/users/:userId", cfg.AdminHandler.UpsertUser)

		admin.POST("/companies/:id/clients", cfg.AdminHandler.AddPSAClient)
		admin.GET("/companies/:id/clients", cfg.AdminHandler.ListPSAClients)
		admin.DELETE("/companies/:id/clients/:clientId", cfg.AdminHandler.RemovePSAClient)

		admin.POST("/companies/:id/orgs", cfg.AdminHandler.AddRMMOrg)
		admin.GET("/companies/:id/orgs", cfg.AdminHandler.ListRMMOrgs)
		admin.DELETE("/companies/:id/orgs/:orgId", cfg.AdminHandler.RemoveRMMOrg)

		admin.POST("/domain-assignments", cfg.AdminHandler.AssignDomain)
		admin.GET("/domain-assignments", cfg.AdminHandler.ListDomainAssignments)
		admin.DELETE("/domain-assignments", cfg.AdminHandler.UnassignDomain)
	}
}
