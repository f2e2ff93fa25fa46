// Package http wires the HTTP surface: middleware, handlers, and routes.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminUsecases "pulseboard/internal/application/admin/usecases"
	assetUsecases "pulseboard/internal/application/assets/usecases"
	dashboardUsecases "pulseboard/internal/application/dashboard/usecases"
	syncUsecases "pulseboard/internal/application/sync/usecases"
	tenantUsecases "pulseboard/internal/application/tenant/usecases"
	"pulseboard/internal/domain/assets"
	"pulseboard/internal/infrastructure/auth"
	"pulseboard/internal/infrastructure/cache"
	"pulseboard/internal/infrastructure/config"
	"pulseboard/internal/infrastructure/ratelimit"
	"pulseboard/internal/infrastructure/repository"
	"pulseboard/internal/infrastructure/tasks"
	"pulseboard/internal/infrastructure/upstream/halo"
	"pulseboard/internal/infrastructure/upstream/ninja"
	"pulseboard/internal/infrastructure/upstream/twentyi"
	"pulseboard/internal/interfaces/http/handlers"
	"pulseboard/internal/interfaces/http/middleware"
	"pulseboard/internal/interfaces/http/routes"
	"pulseboard/internal/shared/logger"
)

const (
	domainCacheTTL  = 5 * time.Minute
	syncTaskTimeout = 30 * time.Minute
)

// Router holds the configured gin engine and the pieces the server
// command needs outside the request path.
type Router struct {
	engine   *gin.Engine
	fullSync *syncUsecases.FullSyncUseCase
}

// NewRouter builds the full dependency graph and registers all routes.
// redisClient may be nil when Redis is disabled; rate limiting is then
// skipped.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	if redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		engine.Use(middleware.RateLimit(limiter, ratelimit.Config{
			RequestsPerMinute: 300,
			RequestsPerHour:   5000,
		}, log))
	}

	// Repositories
	clientRepo := repository.NewClientRepository(db, log)
	ticketRepo := repository.NewTicketRepository(db, log)
	feedbackRepo := repository.NewFeedbackRepository(db, log)
	syncRepo := repository.NewSyncRecordRepository(db, log)
	companyRepo := repository.NewCompanyRepository(db, log)
	profileRepo := repository.NewProfileRepository(db, log)
	mappingRepo := repository.NewMappingRepository(db, log)

	// Upstream clients
	haloClient := halo.NewClient(cfg.Upstream.Halo, log)
	ninjaClient := ninja.NewClient(cfg.Upstream.Ninja, log)
	twentyiClient := twentyi.NewClient(cfg.Upstream.TwentyI, log)

	// Sync pipeline
	syncClients := syncUsecases.NewSyncClientsUseCase(haloClient, clientRepo, syncRepo, log)
	syncTickets := syncUsecases.NewSyncTicketsUseCase(
		haloClient, ticketRepo, clientRepo, syncRepo,
		cfg.Sync.DefaultLookbackMonths, cfg.Sync.BatchSize, log)
	syncFeedback := syncUsecases.NewSyncFeedbackUseCase(haloClient, feedbackRepo, ticketRepo, syncRepo, log)
	fullSync := syncUsecases.NewFullSyncUseCase(syncClients, syncTickets, syncFeedback, log)
	syncStatus := syncUsecases.NewGetSyncStatusUseCase(syncRepo, log)
	runner := tasks.NewRunner(syncTaskTimeout, log)

	// Tenancy
	resolveContext := tenantUsecases.NewResolveContextUseCase(profileRepo, log)
	buildRestrictions := tenantUsecases.NewBuildRestrictionsUseCase(mappingRepo, log)
	getProfile := tenantUsecases.NewGetProfileUseCase(profileRepo, companyRepo, mappingRepo, log)
	switchCompany := tenantUsecases.NewSwitchCompanyUseCase(profileRepo, mappingRepo, companyRepo, log)
	impersonate := tenantUsecases.NewImpersonateUseCase(profileRepo, log)

	// Reporting
	dashboardStats := dashboardUsecases.NewGetDashboardStatsUseCase(ticketRepo, clientRepo, feedbackRepo, log)
	listClients := dashboardUsecases.NewListClientsUseCase(clientRepo, log)
	ticketStats := dashboardUsecases.NewGetTicketStatsUseCase(ticketRepo, log)
	monthlyStats := dashboardUsecases.NewGetMonthlyStatsUseCase(ticketRepo, log)

	// Live assets
	domainCache := cache.NewTTLCache[[]*assets.Domain](domainCacheTTL)
	listDevices := assetUsecases.NewListDevicesUseCase(ninjaClient, log)
	listDomains := assetUsecases.NewListDomainsUseCase(twentyiClient, domainCache, log)

	// Admin
	createCompany := adminUsecases.NewCreateCompanyUseCase(companyRepo, log)
	updateCompany := adminUsecases.NewUpdateCompanyUseCase(companyRepo, log)
	deleteCompany := adminUsecases.NewDeleteCompanyUseCase(companyRepo, log)
	listCompanies := adminUsecases.NewListCompaniesUseCase(companyRepo, log)
	upsertProfile := adminUsecases.NewUpsertUserProfileUseCase(profileRepo, mappingRepo, log)
	listProfiles := adminUsecases.NewListUserProfilesUseCase(profileRepo, log)
	manageMappings := adminUsecases.NewManageMappingsUseCase(mappingRepo, companyRepo, log)

	// Middleware
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	tenancyMiddleware := middleware.NewTenancyMiddleware(resolveContext, buildRestrictions, log)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(dashboardStats, listClients, log)
	ticketHandler := handlers.NewTicketHandler(ticketStats, monthlyStats, log)
	assetHandler := handlers.NewAssetHandler(listDevices, listDomains, log)
	syncHandler := handlers.NewSyncHandler(fullSync, syncStatus, runner, log)
	profileHandler := handlers.NewProfileHandler(getProfile, switchCompany, impersonate, log)
	adminHandler := handlers.NewAdminHandler(
		createCompany, updateCompany, deleteCompany, listCompanies,
		upsertProfile, listProfiles, manageMappings, log)

	engine.GET("/health", healthHandler.Check)

	routes.SetupDashboardRoutes(engine, &routes.DashboardRouteConfig{
		DashboardHandler:  dashboardHandler,
		TicketHandler:     ticketHandler,
		AssetHandler:      assetHandler,
		AuthMiddleware:    authMiddleware,
		TenancyMiddleware: tenancyMiddleware,
	})
	routes.SetupProfileRoutes(engine, &routes.ProfileRouteConfig{
		ProfileHandler: profileHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupSyncRoutes(engine, &routes.SyncRouteConfig{
		SyncHandler:       syncHandler,
		AuthMiddleware:    authMiddleware,
		TenancyMiddleware: tenancyMiddleware,
	})
	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		AdminHandler:      adminHandler,
		AuthMiddleware:    authMiddleware,
		TenancyMiddleware: tenancyMiddleware,
	})

	return &Router{
		engine:   engine,
		fullSync: fullSync,
	}
}

// Engine exposes the gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// SyncJob returns the scheduled-sync adapter for cron registration.
func (r *Router) SyncJob() *syncUsecases.ScheduledJob {
	return syncUsecases.NewScheduledJob(r.fullSync)
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production", "prod":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
