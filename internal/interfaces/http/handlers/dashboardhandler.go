package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/application/dashboard/usecases"
	"pulseboard/internal/interfaces/http/middleware"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

// DashboardHandler serves the landing-page aggregates and the client
// listing, both scoped by the request's restriction set.
type DashboardHandler struct {
	getStatsUseCase    *usecases.GetDashboardStatsUseCase
	listClientsUseCase *usecases.ListClientsUseCase
	logger             logger.Interface
}

func NewDashboardHandler(
	getStatsUseCase *usecases.GetDashboardStatsUseCase,
	listClientsUseCase *usecases.ListClientsUseCase,
	logger logger.Interface,
) *DashboardHandler {
	return &DashboardHandler{
		getStatsUseCase:    getStatsUseCase,
		listClientsUseCase: listClientsUseCase,
		logger:             logger,
	}
}

// GetStats handles GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	restrictions, ok := middleware.RestrictionsFrom(c)
	if !ok {
		h.logger.Error("restriction set not found in context")
		utils.ErrorResponse(c, http.StatusInternalServerError, "internal error")
		return
	}

	stats, err := h.getStatsUseCase.Execute(c.Request.Context(), usecases.GetDashboardStatsCommand{
		Restrictions: restrictions,
	})
	if err != nil {
		h.logger.Errorw("failed to build dashboard stats", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}

// ListClients handles GET /clients
func (h *DashboardHandler) ListClients(c *gin.Context) {
	restrictions, ok := middleware.RestrictionsFrom(c)
	if !ok {
		h.logger.Error("restriction set not found in context")
		utils.ErrorResponse(c, http.StatusInternalServerError, "internal error")
		return
	}

	clients, err := h.listClientsUseCase.Execute(c.Request.Context(), usecases.ListClientsCommand{
		Restrictions: restrictions,
	})
	if err != nil {
		h.logger.Errorw("failed to list clients", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", clients)
}
