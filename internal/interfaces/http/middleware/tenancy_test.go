package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/internal/application/tenant/usecases"
	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/shared/authorization"
)

type stubProfileRepo struct {
	profiles map[string]*tenant.UserProfile
}

func (s *stubProfileRepo) GetByUserID(ctx context.Context, userID string) (*tenant.UserProfile, error) {
	return s.profiles[userID], nil
}
func (s *stubProfileRepo) Save(ctx context.Context, p *tenant.UserProfile) error   { return nil }
func (s *stubProfileRepo) Update(ctx context.Context, p *tenant.UserProfile) error { return nil }
func (s *stubProfileRepo) List(ctx context.Context) ([]*tenant.UserProfile, error) { return nil, nil }
func (s *stubProfileRepo) SetActiveCompany(ctx context.Context, userID string, companyID uint) error {
	return nil
}
func (s *stubProfileRepo) SetImpersonation(ctx context.Context, userID string, targetUserID *string) error {
	return nil
}

type stubMappingRepo struct {
	psaClientIDs map[uint][]int
}

func (s *stubMappingRepo) PSAClientIDs(ctx context.Context, companyID uint) ([]int, error) {
	return s.psaClientIDs[companyID], nil
}
func (s *stubMappingRepo) RMMOrgIDs(ctx context.Context, companyID uint) ([]int, error) {
	return nil, nil
}
func (s *stubMappingRepo) DomainNames(ctx context.Context, companyID uint) ([]string, error) {
	return nil, nil
}
func (s *stubMappingRepo) AddPSAClient(ctx context.Context, m *tenant.CompanyPSAClient) error {
	return nil
}
func (s *stubMappingRepo) RemovePSAClient(ctx context.Context, companyID uint, psaClientID int) error {
	return nil
}
func (s *stubMappingRepo) ListPSAClients(ctx context.Context, companyID uint) ([]*tenant.CompanyPSAClient, error) {
	return nil, nil
}
func (s *stubMappingRepo) AddRMMOrg(ctx context.Context, m *tenant.CompanyRMMOrg) error { return nil }
func (s *stubMappingRepo) RemoveRMMOrg(ctx context.Context, companyID uint, rmmOrgID int) error {
	return nil
}
func (s *stubMappingRepo) ListRMMOrgs(ctx context.Context, companyID uint) ([]*tenant.CompanyRMMOrg, error) {
	return nil, nil
}
func (s *stubMappingRepo) AssignDomain(ctx context.Context, m *tenant.CompanyDomain) error {
	return nil
}
func (s *stubMappingRepo) UnassignDomain(ctx context.Context, domainName string) error { return nil }
func (s *stubMappingRepo) ListDomainAssignments(ctx context.Context) ([]*tenant.CompanyDomain, error) {
	return nil, nil
}
func (s *stubMappingRepo) UserCompanies(ctx context.Context, userID string) ([]uint, error) {
	return nil, nil
}
func (s *stubMappingRepo) AddUserCompany(ctx context.Context, m *tenant.UserCompany) error {
	return nil
}
func (s *stubMappingRepo) RemoveUserCompany(ctx context.Context, userID string, companyID uint) error {
	return nil
}

func TestTenancy_CustomerGetsRestrictionSet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	companyID := uint(7)
	profiles := map[string]*tenant.UserProfile{
		"cust-1": {UserID: "cust-1", Role: tenant.RoleCustomer, ActiveCompanyID: &companyID},
	}

	resolve := usecases.NewResolveContextUseCase(&stubProfileRepo{profiles: profiles}, noopLogger{})
	build := usecases.NewBuildRestrictionsUseCase(&stubMappingRepo{
		psaClientIDs: map[uint][]int{7: {101, 102}},
	}, noopLogger{})
	m := NewTenancyMiddleware(resolve, build, noopLogger{})

	var effective *tenant.EffectiveContext
	var restrictions *tenant.RestrictionSet
	var realAdmin bool

	engine := gin.New()
	engine.GET("/data", func(c *gin.Context) {
		c.Set(ContextKeyUserID, "cust-1")
	}, m.Resolve(), func(c *gin.Context) {
		effective, _ = EffectiveFrom(c)
		restrictions, _ = RestrictionsFrom(c)
		realAdmin = c.GetBool(authorization.ContextKeyRealAdmin)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/data", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, effective)
	assert.Equal(t, "cust-1", effective.UserID)
	assert.False(t, realAdmin)
	require.NotNil(t, restrictions)
	assert.False(t, restrictions.Unrestricted)
	assert.Equal(t, []int{101, 102}, restrictions.PSAClientIDs)
}

func TestTenancy_UnprovisionedUserForbidden(t *testing.T) {
	gin.SetMode(gin.TestMode)

	resolve := usecases.NewResolveContextUseCase(&stubProfileRepo{profiles: map[string]*tenant.UserProfile{}}, noopLogger{})
	build := usecases.NewBuildRestrictionsUseCase(&stubMappingRepo{}, noopLogger{})
	m := NewTenancyMiddleware(resolve, build, noopLogger{})

	engine := gin.New()
	engine.GET("/data", func(c *gin.Context) {
		c.Set(ContextKeyUserID, "ghost")
	}, m.Resolve(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/data", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTenancy_SuperAdminMarkedRealAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	profiles := map[string]*tenant.UserProfile{
		"admin-1": {UserID: "admin-1", Role: tenant.RoleSuperAdmin},
	}

	resolve := usecases.NewResolveContextUseCase(&stubProfileRepo{profiles: profiles}, noopLogger{})
	build := usecases.NewBuildRestrictionsUseCase(&stubMappingRepo{}, noopLogger{})
	m := NewTenancyMiddleware(resolve, build, noopLogger{})

	var restrictions *tenant.RestrictionSet
	var realAdmin bool

	engine := gin.New()
	engine.GET("/data", func(c *gin.Context) {
		c.Set(ContextKeyUserID, "admin-1")
	}, m.Resolve(), func(c *gin.Context) {
		restrictions, _ = RestrictionsFrom(c)
		realAdmin = c.GetBool(authorization.ContextKeyRealAdmin)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/data", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, realAdmin)
	require.NotNil(t, restrictions)
	assert.True(t, restrictions.Unrestricted)
}
