package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/application/assets/usecases"
	"pulseboard/internal/domain/assets"
	"pulseboard/internal/interfaces/http/middleware"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

// AssetHandler serves the live asset pages: servers and workstations
// from the RMM, domains from the hosting provider.
type AssetHandler struct {
	listDevicesUseCase *usecases.ListDevicesUseCase
	listDomainsUseCase *usecases.ListDomainsUseCase
	logger             logger.Interface
}

func NewAssetHandler(
	listDevicesUseCase *usecases.ListDevicesUseCase,
	listDomainsUseCase *usecases.ListDomainsUseCase,
	logger logger.Interface,
) *AssetHandler {
	return &AssetHandler{
		listDevicesUseCase: listDevicesUseCase,
		listDomainsUseCase: listDomainsUseCase,
		logger:             logger,
	}
}

// ListServers handles GET /servers
func (h *AssetHandler) ListServers(c *gin.Context) {
	h.listDevices(c, assets.RoleServer)
}

// ListWorkstations handles GET /workstations
func (h *AssetHandler) ListWorkstations(c *gin.Context) {
	h.listDevices(c, assets.RoleWorkstation)
}

func (h *AssetHandler) listDevices(c *gin.Context, role assets.DeviceRole) {
	restrictions, ok := middleware.RestrictionsFrom(c)
	if !ok {
		h.logger.Error("restriction set not found in context")
		utils.ErrorResponse(c, http.StatusInternalServerError, "internal error")
		return
	}

	listing, err := h.listDevicesUseCase.Execute(c.Request.Context(), usecases.ListDevicesCommand{
		Role:         role,
		Restrictions: restrictions,
	})
	if err != nil {
		h.logger.Errorw("failed to list devices", "role", role, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", listing)
}

// ListDomains handles GET /domains
func (h *AssetHandler) ListDomains(c *gin.Context) {
	restrictions, ok := middleware.RestrictionsFrom(c)
	if !ok {
		h.logger.Error("restriction set not found in context")
		utils.ErrorResponse(c, http.StatusInternalServerError, "internal error")
		return
	}

	listing, err := h.listDomainsUseCase.Execute(c.Request.Context(), usecases.ListDomainsCommand{
		Restrictions: restrictions,
	})
	if err != nil {
		h.logger.Errorw("failed to list domains", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", listing)
}
