package usecases

import (
	"context"
	"fmt"
	"strings"

	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
)

type CreateCompanyCommand struct {
	Name     string
	LogoURL  *string
	Settings map[string]any
}

type CreateCompanyUseCase struct {
	companyRepo tenant.CompanyRepository
	logger      logger.Interface
}

func NewCreateCompanyUseCase(companyRepo tenant.CompanyRepository, logger logger.Interface) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *CreateCompanyUseCase) Execute(ctx context.Context, cmd CreateCompanyCommand) (*tenant.Company, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, errors.NewValidationError("company name is required")
	}

	company := &tenant.Company{
		Name:     name,
		LogoURL:  cmd.LogoURL,
		Settings: cmd.Settings,
	}
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		uc.logger.Errorw("failed to create company", "error", err, "name", name)
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	uc.logger.Infow("company created", "company_id", company.ID, "name", name)
	return company, nil
}

type UpdateCompanyCommand struct {
	CompanyID uint
	Name      *string
	LogoURL   *string
	Settings  map[string]any
}

type UpdateCompanyUseCase struct {
	companyRepo tenant.CompanyRepository
	logger      logger.Interface
}

func NewUpdateCompanyUseCase(companyRepo tenant.CompanyRepository, logger logger.Interface) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, cmd UpdateCompanyCommand) (*tenant.Company, error) {
	company, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "error", err, "company_id", cmd.CompanyID)
		return nil, fmt.Errorf("failed to load company: %w", err)
	}
	if company == nil {
		return nil, errors.NewNotFoundError("company not found")
	}

	if cmd.Name != nil {
		name := strings.TrimSpace(*cmd.Name)
		if name == "" {
			return nil, errors.NewValidationError("company name cannot be empty")
		}
		company.Name = name
	}
	if cmd.LogoURL != nil {
		company.LogoURL = cmd.LogoURL
	}
	if cmd.Settings != nil {
		company.Settings = cmd.Settings
	}

	if err := uc.companyRepo.Update(ctx, company); err != nil {
		uc.logger.Errorw("failed to update company", "error", err, "company_id", cmd.CompanyID)
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	uc.logger.Infow("company updated", "company_id", company.ID)
	return company, nil
}

type DeleteCompanyUseCase struct {
	companyRepo tenant.CompanyRepository
	logger      logger.Interface
}

func NewDeleteCompanyUseCase(companyRepo tenant.CompanyRepository, logger logger.Interface) *DeleteCompanyUseCase {
	return &DeleteCompanyUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *DeleteCompanyUseCase) Execute(ctx context.Context, companyID uint) error {
	if err := uc.companyRepo.Delete(ctx, companyID); err != nil {
		uc.logger.Errorw("failed to delete company", "error", err, "company_id", companyID)
		return fmt.Errorf("failed to delete company: %w", err)
	}

	uc.logger.Infow("company deleted", "company_id", companyID)
	return nil
}

type ListCompaniesUseCase struct {
	companyRepo tenant.CompanyRepository
	logger      logger.Interface
}

func NewListCompaniesUseCase(companyRepo tenant.CompanyRepository, logger logger.Interface) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *ListCompaniesUseCase) Execute(ctx context.Context) ([]*tenant.Company, error) {
	companies, err := uc.companyRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list companies", "error", err)
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	if companies == nil {
		companies = []*tenant.Company{}
	}
	return companies, nil
}
