package tenant

// ActingAs captures who a request is effectively acting as: the
// authenticated user themselves, or a customer being impersonated by a
// super admin. Exactly one of the two constructors applies.
type ActingAs struct {
	self   *UserProfile
	admin  *UserProfile
	target *UserProfile
}

// ActingAsSelf wraps a request acting under its own profile.
func ActingAsSelf(profile *UserProfile) ActingAs {
	return ActingAs{self: profile}
}

// ActingAsImpersonating wraps a super admin acting as a customer target.
func ActingAsImpersonating(admin, target *UserProfile) ActingAs {
	return ActingAs{admin: admin, target: target}
}

// Effective returns the profile all visibility decisions are made from.
func (a ActingAs) Effective() *UserProfile {
	if a.target != nil {
		return a.target
	}
	return a.self
}

// Impersonating reports whether an admin is acting as someone else.
func (a ActingAs) Impersonating() bool {
	return a.target != nil
}

// EffectiveContext is the resolved per-request tenancy decision, passed
// explicitly through the call chain.
type EffectiveContext struct {
	// UserID of the effective profile (the target while impersonating).
	UserID string
	// Role of the effective profile. IsSuperAdmin below is false while a
	// super admin impersonates a customer.
	Role            Role
	ActiveCompanyID *uint
	// IsRealAdmin stays true during impersonation so admin surfaces
	// remain reachable for the authenticated admin.
	IsRealAdmin bool
}

// Resolve collapses an ActingAs into the EffectiveContext applied to the
// request.
func (a ActingAs) Resolve() EffectiveContext {
	eff := a.Effective()
	return EffectiveContext{
		UserID:          eff.UserID,
		Role:            eff.Role,
		ActiveCompanyID: eff.ActiveCompanyID,
		IsRealAdmin:     a.Impersonating() || (a.self != nil && a.self.Role == RoleSuperAdmin),
	}
}

// IsSuperAdmin reports whether the effective role grants unfiltered
// visibility.
func (c EffectiveContext) IsSuperAdmin() bool {
	return c.Role == RoleSuperAdmin
}
