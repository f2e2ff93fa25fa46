package usecases

import (
	"context"
	"fmt"
	"strings"

	"pulseboard/internal/domain/assets"
	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/infrastructure/cache"
	"pulseboard/internal/shared/logger"
)

type DomainView struct {
	Name       string  `json:"name"`
	ExpiryDate *string `json:"expiryDate"`
	Package    *string `json:"package"`
}

type DomainSummary struct {
	TotalDomains int `json:"totalDomains"`
}

type DomainListing struct {
	Summary DomainSummary `json:"summary"`
	Domains []DomainView  `json:"domains"`
}

type ListDomainsCommand struct {
	Restrictions *tenant.RestrictionSet
}

// ListDomainsUseCase serves the domains page. The full reseller listing
// is cached globally for a few minutes since it changes rarely and the
// provider API is slow; tenant filtering happens after the cache.
type ListDomainsUseCase struct {
	fetcher     HostingFetcher
	domainCache *cache.TTLCache[[]*assets.Domain]
	logger      logger.Interface
}

func NewListDomainsUseCase(
	fetcher HostingFetcher,
	domainCache *cache.TTLCache[[]*assets.Domain],
	logger logger.Interface,
) *ListDomainsUseCase {
	return &ListDomainsUseCase{
		fetcher:     fetcher,
		domainCache: domainCache,
		logger:      logger,
	}
}

func (uc *ListDomainsUseCase) Execute(ctx context.Context, cmd ListDomainsCommand) (*DomainListing, error) {
	listing := &DomainListing{Domains: []DomainView{}}
	if cmd.Restrictions.Empty() {
		return listing, nil
	}

	allowed := map[string]struct{}{}
	if !cmd.Restrictions.Unrestricted {
		for _, name := range cmd.Restrictions.DomainNames {
			allowed[strings.ToLower(name)] = struct{}{}
		}
		if len(allowed) == 0 {
			return listing, nil
		}
	}

	domains, err := uc.loadDomains(ctx)
	if err != nil {
		return nil, err
	}

	packageNames := uc.loadPackageNames(ctx)

	for _, domain := range domains {
		if !cmd.Restrictions.Unrestricted {
			if _, ok := allowed[strings.ToLower(domain.Name)]; !ok {
				continue
			}
		}

		view := DomainView{Name: domain.Name}
		if domain.ExpiryDate != nil {
			formatted := domain.ExpiryDate.Format("2006-01-02")
			view.ExpiryDate = &formatted
		}
		if pkg, ok := packageNames[strings.ToLower(domain.Name)]; ok {
			view.Package = &pkg
		}

		listing.Domains = append(listing.Domains, view)
	}
	listing.Summary.TotalDomains = len(listing.Domains)

	return listing, nil
}

func (uc *ListDomainsUseCase) loadDomains(ctx context.Context) ([]*assets.Domain, error) {
	if cached, ok := uc.domainCache.Get(); ok {
		return cached, nil
	}

	domains, err := uc.fetcher.FetchDomains(ctx)
	if err != nil {
		uc.logger.Errorw("failed to fetch domains", "error", err)
		return nil, fmt.Errorf("failed to fetch domains: %w", err)
	}
	uc.domainCache.Set(domains)
	return domains, nil
}

// loadPackageNames maps hosted domain names onto their package name.
// Best effort; a package fetch failure leaves domains without package
// labels rather than failing the page.
func (uc *ListDomainsUseCase) loadPackageNames(ctx context.Context) map[string]string {
	packages, err := uc.fetcher.FetchPackages(ctx)
	if err != nil {
		uc.logger.Warnw("failed to fetch hosting packages", "error", err)
		return nil
	}

	names := make(map[string]string)
	for _, pkg := range packages {
		for _, domainName := range pkg.DomainNames {
			names[strings.ToLower(domainName)] = pkg.Name
		}
	}
	return names
}
