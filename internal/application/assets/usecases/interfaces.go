package usecases

import (
	"context"

	"pulseboard/internal/domain/assets"
)

// RMMFetcher pulls organizations and devices from the monitoring
// provider.
type RMMFetcher interface {
	FetchOrganizations(ctx context.Context) ([]*assets.Organization, error)
	FetchDevices(ctx context.Context) ([]*assets.Device, error)
}

// HostingFetcher pulls domains and packages from the hosting reseller.
type HostingFetcher interface {
	FetchDomains(ctx context.Context) ([]*assets.Domain, error)
	FetchPackages(ctx context.Context) ([]*assets.HostingPackage, error)
}
