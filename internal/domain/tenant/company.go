// Package tenant models companies, user profiles, and the company-to-
// external-ID mappings that drive multi-tenant filtering.
package tenant

import "time"

// Company is the tenant entity. Created and edited only through admin
// operations, never by sync.
type Company struct {
	ID        uint
	Name      string
	LogoURL   *string
	Settings  map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}
