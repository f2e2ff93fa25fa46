package usecases

import (
	"context"

	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/shared/logger"
)

type mockProfileRepo struct {
	getByUserIDFunc      func(ctx context.Context, userID string) (*tenant.UserProfile, error)
	saveFunc             func(ctx context.Context, profile *tenant.UserProfile) error
	updateFunc           func(ctx context.Context, profile *tenant.UserProfile) error
	listFunc             func(ctx context.Context) ([]*tenant.UserProfile, error)
	setActiveCompanyFunc func(ctx context.Context, userID string, companyID uint) error
	setImpersonationFunc func(ctx context.Context, userID string, targetUserID *string) error
}

func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID string) (*tenant.UserProfile, error) {
	if m.getByUserIDFunc != nil {
		return m.getByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileRepo) Save(ctx context.Context, profile *tenant.UserProfile) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepo) Update(ctx context.Context, profile *tenant.UserProfile) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepo) List(ctx context.Context) ([]*tenant.UserProfile, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockProfileRepo) SetActiveCompany(ctx context.Context, userID string, companyID uint) error {
	if m.setActiveCompanyFunc != nil {
		return m.setActiveCompanyFunc(ctx, userID, companyID)
	}
	return nil
}

func (m *mockProfileRepo) SetImpersonation(ctx context.Context, userID string, targetUserID *string) error {
	if m.setImpersonationFunc != nil {
		return m.setImpersonationFunc(ctx, userID, targetUserID)
	}
	return nil
}

type mockCompanyRepo struct {
	createFunc  func(ctx context.Context, company *tenant.Company) error
	updateFunc  func(ctx context.Context, company *tenant.Company) error
	deleteFunc  func(ctx context.Context, companyID uint) error
	getByIDFunc func(ctx context.Context, companyID uint) (*tenant.Company, error)
	listFunc    func(ctx context.Context) ([]*tenant.Company, error)
}

func (m *mockCompanyRepo) Create(ctx context.Context, company *tenant.Company) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, company)
	}
	return nil
}

func (m *mockCompanyRepo) Update(ctx context.Context, company *tenant.Company) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, company)
	}
	return nil
}

func (m *mockCompanyRepo) Delete(ctx context.Context, companyID uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, companyID)
	}
	return nil
}

func (m *mockCompanyRepo) GetByID(ctx context.Context, companyID uint) (*tenant.Company, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockCompanyRepo) List(ctx context.Context) ([]*tenant.Company, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockMappingRepo struct {
	psaClientIDsFunc          func(ctx context.Context, companyID uint) ([]int, error)
	rmmOrgIDsFunc             func(ctx context.Context, companyID uint) ([]int, error)
	domainNamesFunc           func(ctx context.Context, companyID uint) ([]string, error)
	addPSAClientFunc          func(ctx context.Context, m *tenant.CompanyPSAClient) error
	removePSAClientFunc       func(ctx context.Context, companyID uint, psaClientID int) error
	listPSAClientsFunc        func(ctx context.Context, companyID uint) ([]*tenant.CompanyPSAClient, error)
	addRMMOrgFunc             func(ctx context.Context, m *tenant.CompanyRMMOrg) error
	removeRMMOrgFunc          func(ctx context.Context, companyID uint, rmmOrgID int) error
	listRMMOrgsFunc           func(ctx context.Context, companyID uint) ([]*tenant.CompanyRMMOrg, error)
	assignDomainFunc          func(ctx context.Context, m *tenant.CompanyDomain) error
	unassignDomainFunc        func(ctx context.Context, domainName string) error
	listDomainAssignmentsFunc func(ctx context.Context) ([]*tenant.CompanyDomain, error)
	userCompaniesFunc         func(ctx context.Context, userID string) ([]uint, error)
	addUserCompanyFunc        func(ctx context.Context, m *tenant.UserCompany) error
	removeUserCompanyFunc     func(ctx context.Context, userID string, companyID uint) error
}

func (m *mockMappingRepo) PSAClientIDs(ctx context.Context, companyID uint) ([]int, error) {
	if m.psaClientIDsFunc != nil {
		return m.psaClientIDsFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockMappingRepo) RMMOrgIDs(ctx context.Context, companyID uint) ([]int, error) {
	if m.rmmOrgIDsFunc != nil {
		return m.rmmOrgIDsFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockMappingRepo) DomainNames(ctx context.Context, companyID uint) ([]string, error) {
	if m.domainNamesFunc != nil {
		return m.domainNamesFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockMappingRepo) AddPSAClient(ctx context.Context, mapping *tenant.CompanyPSAClient) error {
	if m.addPSAClientFunc != nil {
		return m.addPSAClientFunc(ctx, mapping)
	}
	return nil
}

func (m *mockMappingRepo) RemovePSAClient(ctx context.Context, companyID uint, psaClientID int) error {
	if m.removePSAClientFunc != nil {
		return m.removePSAClientFunc(ctx, companyID, psaClientID)
	}
	return nil
}

func (m *mockMappingRepo) ListPSAClients(ctx context.Context, companyID uint) ([]*tenant.CompanyPSAClient, error) {
	if m.listPSAClientsFunc != nil {
		return m.listPSAClientsFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockMappingRepo) AddRMMOrg(ctx context.Context, mapping *tenant.CompanyRMMOrg) error {
	if m.addRMMOrgFunc != nil {
		return m.addRMMOrgFunc(ctx, mapping)
	}
	return nil
}

func (m *mockMappingRepo) RemoveRMMOrg(ctx context.Context, companyID uint, rmmOrgID int) error {
	if m.removeRMMOrgFunc != nil {
		return m.removeRMMOrgFunc(ctx, companyID, rmmOrgID)
	}
	return nil
}

func (m *mockMappingRepo) ListRMMOrgs(ctx context.Context, companyID uint) ([]*tenant.CompanyRMMOrg, error) {
	if m.listRMMOrgsFunc != nil {
		return m.listRMMOrgsFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockMappingRepo) AssignDomain(ctx context.Context, mapping *tenant.CompanyDomain) error {
	if m.assignDomainFunc != nil {
		return m.assignDomainFunc(ctx, mapping)
	}
	return nil
}

func (m *mockMappingRepo) UnassignDomain(ctx context.Context, domainName string) error {
	if m.unassignDomainFunc != nil {
		return m.unassignDomainFunc(ctx, domainName)
	}
	return nil
}

func (m *mockMappingRepo) ListDomainAssignments(ctx context.Context) ([]*tenant.CompanyDomain, error) {
	if m.listDomainAssignmentsFunc != nil {
		return m.listDomainAssignmentsFunc(ctx)
	}
	return nil, nil
}

func (m *mockMappingRepo) UserCompanies(ctx context.Context, userID string) ([]uint, error) {
	if m.userCompaniesFunc != nil {
		return m.userCompaniesFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockMappingRepo) AddUserCompany(ctx context.Context, mapping *tenant.UserCompany) error {
	if m.addUserCompanyFunc != nil {
		return m.addUserCompanyFunc(ctx, mapping)
	}
	return nil
}

func (m *mockMappingRepo) RemoveUserCompany(ctx context.Context, userID string, companyID uint) error {
	if m.removeUserCompanyFunc != nil {
		return m.removeUserCompanyFunc(ctx, userID, companyID)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
