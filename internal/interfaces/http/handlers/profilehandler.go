package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/application/tenant/usecases"
	"pulseboard/internal/interfaces/http/middleware"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

// ProfileHandler serves the caller's own profile and the actions that
// change their session scope: company switching and impersonation.
type ProfileHandler struct {
	getProfileUseCase    *usecases.GetProfileUseCase
	switchCompanyUseCase *usecases.SwitchCompanyUseCase
	impersonateUseCase   *usecases.ImpersonateUseCase
	logger               logger.Interface
}

func NewProfileHandler(
	getProfileUseCase *usecases.GetProfileUseCase,
	switchCompanyUseCase *usecases.SwitchCompanyUseCase,
	impersonateUseCase *usecases.ImpersonateUseCase,
	logger logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		getProfileUseCase:    getProfileUseCase,
		switchCompanyUseCase: switchCompanyUseCase,
		impersonateUseCase:   impersonateUseCase,
		logger:               logger,
	}
}

// authenticatedUserID returns the real authenticated subject, not the
// impersonated one. Scope-changing actions always apply to the real user.
func authenticatedUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.ContextKeyUserID)
	return userID, userID != ""
}

// GetProfile handles GET /profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	view, err := h.getProfileUseCase.Execute(c.Request.Context(), usecases.GetProfileCommand{UserID: userID})
	if err != nil {
		h.logger.Warnw("failed to load profile", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", view)
}

type switchCompanyRequest struct {
	CompanyID uint `json:"companyId" binding:"required"`
}

// SwitchCompany handles POST /profile/switch-company
func (h *ProfileHandler) SwitchCompany(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req switchCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "companyId is required")
		return
	}

	err := h.switchCompanyUseCase.Execute(c.Request.Context(), usecases.SwitchCompanyCommand{
		UserID:    userID,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		h.logger.Warnw("company switch rejected", "user_id", userID, "company_id", req.CompanyID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "active company updated", nil)
}

// StartImpersonation handles POST /profile/impersonate/:userId
func (h *ProfileHandler) StartImpersonation(c *gin.Context) {
	adminID, ok := authenticatedUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	targetID := c.Param("userId")
	if targetID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "target user ID is required")
		return
	}

	err := h.impersonateUseCase.Start(c.Request.Context(), usecases.StartImpersonationCommand{
		AdminUserID:  adminID,
		TargetUserID: targetID,
	})
	if err != nil {
		h.logger.Warnw("impersonation rejected", "admin_user_id", adminID, "target_user_id", targetID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("impersonation started", "admin_user_id", adminID, "target_user_id", targetID)
	utils.SuccessResponse(c, http.StatusOK, "impersonation started", nil)
}

// StopImpersonation handles POST /profile/stop-impersonation
func (h *ProfileHandler) StopImpersonation(c *gin.Context) {
	adminID, ok := authenticatedUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	err := h.impersonateUseCase.Stop(c.Request.Context(), usecases.StopImpersonationCommand{AdminUserID: adminID})
	if err != nil {
		h.logger.Warnw("failed to stop impersonation", "admin_user_id", adminID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "impersonation stopped", nil)
}
