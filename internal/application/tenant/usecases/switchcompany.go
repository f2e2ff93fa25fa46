package usecases

import (
	"context"
	"fmt"

	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
)

type SwitchCompanyCommand struct {
	UserID    string
	CompanyID uint
}

// SwitchCompanyUseCase changes which company a multi-company user is
// currently viewing. Membership is checked against the mapping table;
// super admins may switch to any company.
type SwitchCompanyUseCase struct {
	profileRepo tenant.ProfileRepository
	mappingRepo tenant.MappingRepository
	companyRepo tenant.CompanyRepository
	logger      logger.Interface
}

func NewSwitchCompanyUseCase(
	profileRepo tenant.ProfileRepository,
	mappingRepo tenant.MappingRepository,
	companyRepo tenant.CompanyRepository,
	logger logger.Interface,
) *SwitchCompanyUseCase {
	return &SwitchCompanyUseCase{
		profileRepo: profileRepo,
		mappingRepo: mappingRepo,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *SwitchCompanyUseCase) Execute(ctx context.Context, cmd SwitchCompanyCommand) error {
	profile, err := uc.profileRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user profile", "error", err, "user_id", cmd.UserID)
		return fmt.Errorf("failed to load user profile: %w", err)
	}
	if profile == nil {
		return errors.NewForbiddenError("no profile provisioned for user")
	}

	company, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "error", err, "company_id", cmd.CompanyID)
		return fmt.Errorf("failed to load company: %w", err)
	}
	if company == nil {
		return errors.NewNotFoundError("company not found")
	}

	if profile.Role != tenant.RoleSuperAdmin {
		memberships, err := uc.mappingRepo.UserCompanies(ctx, cmd.UserID)
		if err != nil {
			uc.logger.Errorw("failed to load user memberships", "error", err, "user_id", cmd.UserID)
			return fmt.Errorf("failed to load user memberships: %w", err)
		}
		if !containsUint(memberships, cmd.CompanyID) {
			return errors.NewForbiddenError("user is not a member of this company")
		}
	}

	if err := uc.profileRepo.SetActiveCompany(ctx, cmd.UserID, cmd.CompanyID); err != nil {
		uc.logger.Errorw("failed to set active company", "error", err,
			"user_id", cmd.UserID, "company_id", cmd.CompanyID)
		return fmt.Errorf("failed to set active company: %w", err)
	}

	uc.logger.Infow("active company switched", "user_id", cmd.UserID, "company_id", cmd.CompanyID)
	return nil
}

func containsUint(values []uint, target uint) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
