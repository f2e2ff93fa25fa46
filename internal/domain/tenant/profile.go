package tenant

import "time"

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleCustomer   Role = "customer"
)

func (r Role) IsValid() bool {
	return r == RoleSuperAdmin || r == RoleCustomer
}

// UserProfile is one row per authenticated user. Provisioning is
// admin-driven; a request from a user without a profile is rejected.
type UserProfile struct {
	UserID              string
	FullName            string
	Role                Role
	ActiveCompanyID     *uint
	ImpersonatingUserID *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsImpersonating reports whether this super admin is currently acting as
// another user. The field is only meaningful for super admins.
func (p *UserProfile) IsImpersonating() bool {
	return p.Role == RoleSuperAdmin && p.ImpersonatingUserID != nil && *p.ImpersonatingUserID != ""
}
