package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/internal/domain/assets"
	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/infrastructure/cache"
)

type mockHostingFetcher struct {
	fetchDomainsCalls int
	fetchDomainsFunc  func(ctx context.Context) ([]*assets.Domain, error)
	fetchPackagesFunc func(ctx context.Context) ([]*assets.HostingPackage, error)
}

func (m *mockHostingFetcher) FetchDomains(ctx context.Context) ([]*assets.Domain, error) {
	m.fetchDomainsCalls++
	if m.fetchDomainsFunc != nil {
		return m.fetchDomainsFunc(ctx)
	}
	return nil, nil
}

func (m *mockHostingFetcher) FetchPackages(ctx context.Context) ([]*assets.HostingPackage, error) {
	if m.fetchPackagesFunc != nil {
		return m.fetchPackagesFunc(ctx)
	}
	return nil, nil
}

func testHostingFetcher() *mockHostingFetcher {
	expiry := time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC)
	return &mockHostingFetcher{
		fetchDomainsFunc: func(ctx context.Context) ([]*assets.Domain, error) {
			return []*assets.Domain{
				{Name: "acme.co.uk", ExpiryDate: &expiry},
				{Name: "globex.com"},
				{Name: "initech.net"},
			}, nil
		},
		fetchPackagesFunc: func(ctx context.Context) ([]*assets.HostingPackage, error) {
			return []*assets.HostingPackage{
				{ID: 1, Name: "acme-hosting", DomainNames: []string{"acme.co.uk"}},
			}, nil
		},
	}
}

func TestListDomains_FiltersByAssignedNames(t *testing.T) {
	uc := NewListDomainsUseCase(testHostingFetcher(), cache.NewTTLCache[[]*assets.Domain](5*time.Minute), &mockLogger{})

	listing, err := uc.Execute(context.Background(), ListDomainsCommand{
		Restrictions: &tenant.RestrictionSet{DomainNames: []string{"ACME.co.uk"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, listing.Summary.TotalDomains)
	require.Len(t, listing.Domains, 1)
	assert.Equal(t, "acme.co.uk", listing.Domains[0].Name)
	require.NotNil(t, listing.Domains[0].ExpiryDate)
	assert.Equal(t, "2027-03-15", *listing.Domains[0].ExpiryDate)
	require.NotNil(t, listing.Domains[0].Package)
	assert.Equal(t, "acme-hosting", *listing.Domains[0].Package)
}

func TestListDomains_EmptyMappingReturnsEmptyShape(t *testing.T) {
	fetcher := testHostingFetcher()
	uc := NewListDomainsUseCase(fetcher, cache.NewTTLCache[[]*assets.Domain](5*time.Minute), &mockLogger{})

	listing, err := uc.Execute(context.Background(), ListDomainsCommand{
		Restrictions: &tenant.RestrictionSet{},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, listing.Summary.TotalDomains)
	assert.NotNil(t, listing.Domains)
	assert.Empty(t, listing.Domains)
	assert.Zero(t, fetcher.fetchDomainsCalls)
}

func TestListDomains_CacheServesRepeatCalls(t *testing.T) {
	fetcher := testHostingFetcher()
	uc := NewListDomainsUseCase(fetcher, cache.NewTTLCache[[]*assets.Domain](5*time.Minute), &mockLogger{})

	cmd := ListDomainsCommand{Restrictions: &tenant.RestrictionSet{Unrestricted: true}}
	_, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, fetcher.fetchDomainsCalls, "second call must hit the cache")
}

func TestListDomains_PackageFailureLeavesDomainsUnlabeled(t *testing.T) {
	fetcher := testHostingFetcher()
	fetcher.fetchPackagesFunc = func(ctx context.Context) ([]*assets.HostingPackage, error) {
		return nil, assert.AnError
	}
	uc := NewListDomainsUseCase(fetcher, cache.NewTTLCache[[]*assets.Domain](5*time.Minute), &mockLogger{})

	listing, err := uc.Execute(context.Background(), ListDomainsCommand{
		Restrictions: &tenant.RestrictionSet{Unrestricted: true},
	})
	require.NoError(t, err)
	require.Len(t, listing.Domains, 3)
	for _, domain := range listing.Domains {
		assert.Nil(t, domain.Package)
	}
}
