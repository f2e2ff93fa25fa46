// Package assets holds the normalized records fetched live from the
// monitoring (RMM) and hosting providers. Unlike PSA data these are not
// cached in the relational store; a short-TTL cache in front of the
// hosting provider bounds upstream calls.
package assets

import "time"

// Organization is an RMM-provider organization.
type Organization struct {
	ID   int
	Name string
}

// Device is a monitored endpoint. Role distinguishes servers from
// workstations.
type Device struct {
	ID             int
	OrgID          int
	SystemName     string
	Role           DeviceRole
	Online         bool
	OS             *string
	LastContact    *time.Time
}

type DeviceRole string

const (
	RoleServer      DeviceRole = "server"
	RoleWorkstation DeviceRole = "workstation"
	RoleOther       DeviceRole = "other"
)

// Domain is a hosted/registered domain from the reseller platform.
type Domain struct {
	Name       string
	ExpiryDate *time.Time
	PackageID  *int
}

// HostingPackage is a reseller hosting package; StackUsers derives
// ownership of the domains it carries.
type HostingPackage struct {
	ID         int
	Name       string
	DomainNames []string
	StackUsers []string
}
