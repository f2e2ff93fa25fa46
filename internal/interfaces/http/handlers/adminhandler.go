package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/application/admin/usecases"
	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

// AdminHandler covers company CRUD, user provisioning, and the mapping
// tables that bind companies to upstream identifiers. All routes behind
// it require a real super admin.
type AdminHandler struct {
	createCompany *usecases.CreateCompanyUseCase
	updateCompany *usecases.UpdateCompanyUseCase
	deleteCompany *usecases.DeleteCompanyUseCase
	listCompanies *usecases.ListCompaniesUseCase
	upsertProfile *usecases.UpsertUserProfileUseCase
	listProfiles  *usecases.ListUserProfilesUseCase
	mappings      *usecases.ManageMappingsUseCase
	logger        logger.Interface
}

func NewAdminHandler(
	createCompany *usecases.CreateCompanyUseCase,
	updateCompany *usecases.UpdateCompanyUseCase,
	deleteCompany *usecases.DeleteCompanyUseCase,
	listCompanies *usecases.ListCompaniesUseCase,
	upsertProfile *usecases.UpsertUserProfileUseCase,
	listProfiles *usecases.ListUserProfilesUseCase,
	mappings *usecases.ManageMappingsUseCase,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		createCompany: createCompany,
		updateCompany: updateCompany,
		deleteCompany: deleteCompany,
		listCompanies: listCompanies,
		upsertProfile: upsertProfile,
		listProfiles:  listProfiles,
		mappings:      mappings,
		logger:        logger,
	}
}

type companyRequest struct {
	Name     string         `json:"name" binding:"required"`
	LogoURL  *string        `json:"logoUrl"`
	Settings map[string]any `json:"settings"`
}

// CreateCompany handles POST /admin/companies
func (h *AdminHandler) CreateCompany(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name is required")
		return
	}

	company, err := h.createCompany.Execute(c.Request.Context(), usecases.CreateCompanyCommand{
		Name:     req.Name,
		LogoURL:  req.LogoURL,
		Settings: req.Settings,
	})
	if err != nil {
		h.logger.Warnw("failed to create company", "name", req.Name, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, company, "company created")
}

type updateCompanyRequest struct {
	Name     *string        `json:"name"`
	LogoURL  *string        `json:"logoUrl"`
	Settings map[string]any `json:"settings"`
}

// UpdateCompany handles PUT /admin/companies/:id
func (h *AdminHandler) UpdateCompany(c *gin.Context) {
	companyID, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	company, err := h.updateCompany.Execute(c.Request.Context(), usecases.UpdateCompanyCommand{
		CompanyID: companyID,
		Name:      req.Name,
		LogoURL:   req.LogoURL,
		Settings:  req.Settings,
	})
	if err != nil {
		h.logger.Warnw("failed to update company", "company_id", companyID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "company updated", company)
}

// DeleteCompany handles DELETE /admin/companies/:id
func (h *AdminHandler) DeleteCompany(c *gin.Context) {
	companyID, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteCompany.Execute(c.Request.Context(), companyID); err != nil {
		h.logger.Warnw("failed to delete company", "company_id", companyID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "company deleted", nil)
}

// ListCompanies handles GET /admin/companies
func (h *AdminHandler) ListCompanies(c *gin.Context) {
	companies, err := h.listCompanies.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list companies", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", companies)
}

type upsertUserRequest struct {
	FullName        string `json:"fullName"`
	Role            string `json:"role" binding:"required"`
	ActiveCompanyID *uint  `json:"activeCompanyId"`
	CompanyIDs      []uint `json:"companyIds"`
}

// UpsertUser handles PUT /admin/users/:userId
func (h *AdminHandler) UpsertUser(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "user ID is required")
		return
	}

	var req upsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "role is required")
		return
	}

	profile, err := h.upsertProfile.Execute(c.Request.Context(), usecases.UpsertUserProfileCommand{
		UserID:          userID,
		FullName:        req.FullName,
		Role:            tenant.Role(req.Role),
		ActiveCompanyID: req.ActiveCompanyID,
		CompanyIDs:      req.CompanyIDs,
	})
	if err != nil {
		h.logger.Warnw("failed to upsert user profile", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user profile saved", profile)
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	profiles, err := h.listProfiles.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list user profiles", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", profiles)
}

type addPSAClientRequest struct {
	PSAClientID int `json:"psaClientId" binding:"required"`
}

// AddPSAClient handles POST /admin/companies/:id/clients
func (h *AdminHandler) AddPSAClient(c *gin.Context) {
	companyID, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req addPSAClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "psaClientId is required")
		return
	}

	if err := h.mappings.AddPSAClient(c.Request.Context(), companyID, req.PSAClientID); err != nil {
		h.logger.Warnw("failed to map PSA client", "company_id", companyID, "psa_client_id", req.PSAClientID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, nil, "client mapping added")
}

// RemovePSAClient handles DELETE /admin/companies/:id/clients/:clientId
func (h *AdminHandler) RemovePSAClient(c *gin.Context) {
	companyID, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	clientID, err := utils.ParseIntParam(c, "clientId", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.mappings.RemovePSAClient(c.Request.Context(), companyID, clientID); err != nil {
		h.logger.Warnw("failed to remove PSA client mapping", "company_id", companyID, "psa_client_id", clientID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "client mapping removed", nil)
}

// ListPSAClients handles GET /admin/companies/:id/clients
func (h *AdminHandler) ListPSAClients(c *gin.Context) {
	companyID, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	mappings, err := h.mappings.ListPSAClients(c.Request.Context(), companyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", mappings)
}

type addRMMOrgRequest struct {
	RMMOrgID int    `json:"rmmOrgId" binding:"required"`
	OrgName  string `json:"orgName"`
}

// AddRMMOrg handles POST /admin/companies/:id/orgs
func (h *AdminHandler) AddRMMOrg(c *gin.Context) {
	companyID, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req addRMMOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "rmmOrgId is required")
		return
	}

	if err := h.mappings.AddRMMOrg(c.Request.Context(), companyID, req.RMMOrgID, req.OrgName); err != nil {
		h.logger.Warnw("failed to map RMM organization", "company_id", companyID, "rmm_org_id", req.RMMOrgID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, nil, "organization mapping added")
}

// RemoveRMMOrg handles DELETE /admin/companies/:id/orgs/:orgId
func (h *AdminHandler) RemoveRMMOrg(c *gin.Context) {
	companyID, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	orgID, err := utils.ParseIntParam(c, "orgId", "organization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.mappings.RemoveRMMOrg(c.Request.Context(), companyID, orgID); err != nil {
		h.logger.Warnw("failed to remove RMM organization mapping", "company_id", companyID, "rmm_org_id", orgID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "organization mapping removed", nil)
}

// ListRMMOrgs handles GET /admin/companies/:id/orgs
func (h *AdminHandler) ListRMMOrgs(c *gin.Context) {
	companyID, err := utils.ParseUintParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	mappings, err := h.mappings.ListRMMOrgs(c.Request.Context(), companyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", mappings)
}

type assignDomainRequest struct {
	CompanyID  uint   `json:"companyId" binding:"required"`
	DomainName string `json:"domainName" binding:"required"`
}

// AssignDomain handles POST /admin/domain-assignments
func (h *AdminHandler) AssignDomain(c *gin.Context) {
	var req assignDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "companyId and domainName are required")
		return
	}

	if err := h.mappings.AssignDomain(c.Request.Context(), req.CompanyID, req.DomainName); err != nil {
		h.logger.Warnw("failed to assign domain", "company_id", req.CompanyID, "domain", req.DomainName, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, nil, "domain assigned")
}

type unassignDomainRequest struct {
	DomainName string `json:"domainName" binding:"required"`
}

// UnassignDomain handles DELETE /admin/domain-assignments
func (h *AdminHandler) UnassignDomain(c *gin.Context) {
	var req unassignDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "domainName is required")
		return
	}

	if err := h.mappings.UnassignDomain(c.Request.Context(), req.DomainName); err != nil {
		h.logger.Warnw("failed to unassign domain", "domain", req.DomainName, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "domain unassigned", nil)
}

// ListDomainAssignments handles GET /admin/domain-assignments
func (h *AdminHandler) ListDomainAssignments(c *gin.Context) {
	assignments, err := h.mappings.ListDomainAssignments(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", assignments)
}
