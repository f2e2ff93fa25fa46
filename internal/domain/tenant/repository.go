package tenant

import "context"

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*UserProfile, error)
	Save(ctx context.Context, profile *UserProfile) error
	Update(ctx context.Context, profile *UserProfile) error
	List(ctx context.Context) ([]*UserProfile, error)
	SetActiveCompany(ctx context.Context, userID string, companyID uint) error
	SetImpersonation(ctx context.Context, userID string, targetUserID *string) error
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, companyID uint) error
	GetByID(ctx context.Context, companyID uint) (*Company, error)
	List(ctx context.Context) ([]*Company, error)
}

// MappingRepository covers the three company-to-external-ID mapping
// tables plus user-company membership. These tables are the sole source
// of truth for tenant filtering and are written only by admin CRUD.
type MappingRepository interface {
	PSAClientIDs(ctx context.Context, companyID uint) ([]int, error)
	RMMOrgIDs(ctx context.Context, companyID uint) ([]int, error)
	DomainNames(ctx context.Context, companyID uint) ([]string, error)

	AddPSAClient(ctx context.Context, m *CompanyPSAClient) error
	RemovePSAClient(ctx context.Context, companyID uint, psaClientID int) error
	ListPSAClients(ctx context.Context, companyID uint) ([]*CompanyPSAClient, error)

	AddRMMOrg(ctx context.Context, m *CompanyRMMOrg) error
	RemoveRMMOrg(ctx context.Context, companyID uint, rmmOrgID int) error
	ListRMMOrgs(ctx context.Context, companyID uint) ([]*CompanyRMMOrg, error)

	AssignDomain(ctx context.Context, m *CompanyDomain) error
	UnassignDomain(ctx context.Context, domainName string) error
	ListDomainAssignments(ctx context.Context) ([]*CompanyDomain, error)

	UserCompanies(ctx context.Context, userID string) ([]uint, error)
	AddUserCompany(ctx context.Context, m *UserCompany) error
	RemoveUserCompany(ctx context.Context, userID string, companyID uint) error
}
