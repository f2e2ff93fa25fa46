package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
)

var domainValidator = validator.New()

// ManageMappingsUseCase is the admin surface over the company-to-
// external-ID mapping tables. These rows are the sole input to tenant
// filtering, so every change is logged with its actor-visible effect.
type ManageMappingsUseCase struct {
	mappingRepo tenant.MappingRepository
	companyRepo tenant.CompanyRepository
	logger      logger.Interface
}

func NewManageMappingsUseCase(
	mappingRepo tenant.MappingRepository,
	companyRepo tenant.CompanyRepository,
	logger logger.Interface,
) *ManageMappingsUseCase {
	return &ManageMappingsUseCase{
		mappingRepo: mappingRepo,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *ManageMappingsUseCase) requireCompany(ctx context.Context, companyID uint) error {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "error", err, "company_id", companyID)
		return fmt.Errorf("failed to load company: %w", err)
	}
	if company == nil {
		return errors.NewNotFoundError("company not found")
	}
	return nil
}

func (uc *ManageMappingsUseCase) AddPSAClient(ctx context.Context, companyID uint, psaClientID int) error {
	if err := uc.requireCompany(ctx, companyID); err != nil {
		return err
	}
	if err := uc.mappingRepo.AddPSAClient(ctx, &tenant.CompanyPSAClient{
		CompanyID:   companyID,
		PSAClientID: psaClientID,
	}); err != nil {
		uc.logger.Errorw("failed to add psa client mapping", "error", err,
			"company_id", companyID, "psa_client_id", psaClientID)
		return fmt.Errorf("failed to add psa client mapping: %w", err)
	}

	uc.logger.Infow("psa client mapped", "company_id", companyID, "psa_client_id", psaClientID)
	return nil
}

func (uc *ManageMappingsUseCase) RemovePSAClient(ctx context.Context, companyID uint, psaClientID int) error {
	if err := uc.mappingRepo.RemovePSAClient(ctx, companyID, psaClientID); err != nil {
		uc.logger.Errorw("failed to remove psa client mapping", "error", err,
			"company_id", companyID, "psa_client_id", psaClientID)
		return fmt.Errorf("failed to remove psa client mapping: %w", err)
	}

	uc.logger.Infow("psa client unmapped", "company_id", companyID, "psa_client_id", psaClientID)
	return nil
}

func (uc *ManageMappingsUseCase) ListPSAClients(ctx context.Context, companyID uint) ([]*tenant.CompanyPSAClient, error) {
	mappings, err := uc.mappingRepo.ListPSAClients(ctx, companyID)
	if err != nil {
		uc.logger.Errorw("failed to list psa client mappings", "error", err, "company_id", companyID)
		return nil, fmt.Errorf("failed to list psa client mappings: %w", err)
	}
	if mappings == nil {
		mappings = []*tenant.CompanyPSAClient{}
	}
	return mappings, nil
}

func (uc *ManageMappingsUseCase) AddRMMOrg(ctx context.Context, companyID uint, rmmOrgID int, orgName string) error {
	if err := uc.requireCompany(ctx, companyID); err != nil {
		return err
	}
	if err := uc.mappingRepo.AddRMMOrg(ctx, &tenant.CompanyRMMOrg{
		CompanyID: companyID,
		RMMOrgID:  rmmOrgID,
		OrgName:   orgName,
	}); err != nil {
		uc.logger.Errorw("failed to add rmm org mapping", "error", err,
			"company_id", companyID, "rmm_org_id", rmmOrgID)
		return fmt.Errorf("failed to add rmm org mapping: %w", err)
	}

	uc.logger.Infow("rmm org mapped", "company_id", companyID, "rmm_org_id", rmmOrgID)
	return nil
}

func (uc *ManageMappingsUseCase) RemoveRMMOrg(ctx context.Context, companyID uint, rmmOrgID int) error {
	if err := uc.mappingRepo.RemoveRMMOrg(ctx, companyID, rmmOrgID); err != nil {
		uc.logger.Errorw("failed to remove rmm org mapping", "error", err,
			"company_id", companyID, "rmm_org_id", rmmOrgID)
		return fmt.Errorf("failed to remove rmm org mapping: %w", err)
	}

	uc.logger.Infow("rmm org unmapped", "company_id", companyID, "rmm_org_id", rmmOrgID)
	return nil
}

func (uc *ManageMappingsUseCase) ListRMMOrgs(ctx context.Context, companyID uint) ([]*tenant.CompanyRMMOrg, error) {
	mappings, err := uc.mappingRepo.ListRMMOrgs(ctx, companyID)
	if err != nil {
		uc.logger.Errorw("failed to list rmm org mappings", "error", err, "company_id", companyID)
		return nil, fmt.Errorf("failed to list rmm org mappings: %w", err)
	}
	if mappings == nil {
		mappings = []*tenant.CompanyRMMOrg{}
	}
	return mappings, nil
}

// AssignDomain gives a company a hosted domain. A domain belongs to at
// most one company; assigning an already-assigned domain conflicts.
func (uc *ManageMappingsUseCase) AssignDomain(ctx context.Context, companyID uint, domainName string) error {
	domainName = strings.ToLower(strings.TrimSpace(domainName))
	if domainName == "" {
		return errors.NewValidationError("domain name is required")
	}
	if err := domainValidator.Var(domainName, "fqdn"); err != nil {
		return errors.NewValidationError("invalid domain name")
	}
	if err := uc.requireCompany(ctx, companyID); err != nil {
		return err
	}

	if err := uc.mappingRepo.AssignDomain(ctx, &tenant.CompanyDomain{
		CompanyID:  companyID,
		DomainName: domainName,
	}); err != nil {
		uc.logger.Errorw("failed to assign domain", "error", err,
			"company_id", companyID, "domain", domainName)
		return fmt.Errorf("failed to assign domain: %w", err)
	}

	uc.logger.Infow("domain assigned", "company_id", companyID, "domain", domainName)
	return nil
}

func (uc *ManageMappingsUseCase) UnassignDomain(ctx context.Context, domainName string) error {
	domainName = strings.ToLower(strings.TrimSpace(domainName))
	if err := uc.mappingRepo.UnassignDomain(ctx, domainName); err != nil {
		uc.logger.Errorw("failed to unassign domain", "error", err, "domain", domainName)
		return fmt.Errorf("failed to unassign domain: %w", err)
	}

	uc.logger.Infow("domain unassigned", "domain", domainName)
	return nil
}

func (uc *ManageMappingsUseCase) ListDomainAssignments(ctx context.Context) ([]*tenant.CompanyDomain, error) {
	assignments, err := uc.mappingRepo.ListDomainAssignments(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list domain assignments", "error", err)
		return nil, fmt.Errorf("failed to list domain assignments: %w", err)
	}
	if assignments == nil {
		assignments = []*tenant.CompanyDomain{}
	}
	return assignments, nil
}
