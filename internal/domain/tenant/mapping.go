package tenant

// CompanyPSAClient maps a company to one PSA client ID it may see.
type CompanyPSAClient struct {
	ID          uint
	CompanyID   uint
	PSAClientID int
}

// CompanyRMMOrg maps a company to one monitoring-provider organization,
// with the org name cached for display.
type CompanyRMMOrg struct {
	ID        uint
	CompanyID uint
	RMMOrgID  int
	OrgName   string
}

// CompanyDomain assigns a hosted domain to a company. A domain belongs to
// at most one company.
type CompanyDomain struct {
	ID         uint
	CompanyID  uint
	DomainName string
}

// UserCompany is the many-to-many membership between users and companies.
// Exactly one membership is active at a time via the profile's
// ActiveCompanyID.
type UserCompany struct {
	ID        uint
	UserID    string
	CompanyID uint
}

// RestrictionSet is the set of external identifiers the effective company
// is permitted to see. Unrestricted is true only for a real super admin
// view; otherwise empty slices mean empty results, never full visibility.
type RestrictionSet struct {
	Unrestricted bool
	PSAClientIDs []int
	RMMOrgIDs    []int
	DomainNames  []string
}

// AllowsPSAClient reports whether the set permits the given PSA client.
func (r *RestrictionSet) AllowsPSAClient(id int) bool {
	if r.Unrestricted {
		return true
	}
	for _, allowed := range r.PSAClientIDs {
		if allowed == id {
			return true
		}
	}
	return false
}

// Empty reports whether a restricted set permits nothing.
func (r *RestrictionSet) Empty() bool {
	return !r.Unrestricted &&
		len(r.PSAClientIDs) == 0 && len(r.RMMOrgIDs) == 0 && len(r.DomainNames) == 0
}
