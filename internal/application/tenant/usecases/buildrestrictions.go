package usecases

import (
	"context"
	"fmt"

	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/shared/logger"
)

// BuildRestrictionsUseCase turns an effective context into the set of
// external identifiers the request may see. A real super admin view is
// unrestricted; everyone else gets exactly the IDs mapped to their
// active company, which may legitimately be nothing.
type BuildRestrictionsUseCase struct {
	mappingRepo tenant.MappingRepository
	logger      logger.Interface
}

func NewBuildRestrictionsUseCase(mappingRepo tenant.MappingRepository, logger logger.Interface) *BuildRestrictionsUseCase {
	return &BuildRestrictionsUseCase{
		mappingRepo: mappingRepo,
		logger:      logger,
	}
}

func (uc *BuildRestrictionsUseCase) Execute(ctx context.Context, effective *tenant.EffectiveContext) (*tenant.RestrictionSet, error) {
	if effective.IsSuperAdmin() {
		return &tenant.RestrictionSet{Unrestricted: true}, nil
	}

	if effective.ActiveCompanyID == nil {
		// Resolve already rejects this; guard against direct callers.
		return &tenant.RestrictionSet{}, nil
	}
	companyID := *effective.ActiveCompanyID

	psaIDs, err := uc.mappingRepo.PSAClientIDs(ctx, companyID)
	if err != nil {
		uc.logger.Errorw("failed to load psa client mappings", "error", err, "company_id", companyID)
		return nil, fmt.Errorf("failed to load psa client mappings: %w", err)
	}

	rmmIDs, err := uc.mappingRepo.RMMOrgIDs(ctx, companyID)
	if err != nil {
		uc.logger.Errorw("failed to load rmm org mappings", "error", err, "company_id", companyID)
		return nil, fmt.Errorf("failed to load rmm org mappings: %w", err)
	}

	domains, err := uc.mappingRepo.DomainNames(ctx, companyID)
	if err != nil {
		uc.logger.Errorw("failed to load domain mappings", "error", err, "company_id", companyID)
		return nil, fmt.Errorf("failed to load domain mappings: %w", err)
	}

	if psaIDs == nil {
		psaIDs = []int{}
	}
	if rmmIDs == nil {
		rmmIDs = []int{}
	}
	if domains == nil {
		domains = []string{}
	}

	return &tenant.RestrictionSet{
		PSAClientIDs: psaIDs,
		RMMOrgIDs:    rmmIDs,
		DomainNames:  domains,
	}, nil
}
