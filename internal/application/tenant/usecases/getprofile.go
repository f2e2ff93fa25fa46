package usecases

import (
	"context"

	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
)

type GetProfileCommand struct {
	UserID string
}

// ProfileView is what the frontend needs to render the user menu: who
// the caller is, which companies they can switch between, and whether
// an impersonation is active. Role, active company, and isSuperAdmin
// reflect the effective profile, so an impersonating admin sees the
// borrowed customer view with isRealSuperAdmin keeping admin surfaces
// reachable.
type ProfileView struct {
	UserID              string          `json:"userId"`
	FullName            string          `json:"fullName"`
	Role                tenant.Role     `json:"role"`
	ActiveCompanyID     *uint           `json:"activeCompanyId"`
	IsSuperAdmin        bool            `json:"isSuperAdmin"`
	IsRealSuperAdmin    bool            `json:"isRealSuperAdmin"`
	Companies           []CompanyOption `json:"companies"`
	ImpersonatingUserID *string         `json:"impersonatingUserId,omitempty"`
}

type CompanyOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type GetProfileUseCase struct {
	profileRepo tenant.ProfileRepository
	companyRepo tenant.CompanyRepository
	mappingRepo tenant.MappingRepository
	logger      logger.Interface
}

func NewGetProfileUseCase(
	profileRepo tenant.ProfileRepository,
	companyRepo tenant.CompanyRepository,
	mappingRepo tenant.MappingRepository,
	logger logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
		companyRepo: companyRepo,
		mappingRepo: mappingRepo,
		logger:      logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, cmd GetProfileCommand) (*ProfileView, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.NewForbiddenError("no profile provisioned for user")
	}

	acting := tenant.ActingAsSelf(profile)
	if profile.IsImpersonating() {
		target, err := uc.profileRepo.GetByUserID(ctx, *profile.ImpersonatingUserID)
		if err != nil {
			return nil, err
		}
		if target == nil {
			uc.logger.Warnw("impersonation target profile missing, acting as self",
				"user_id", profile.UserID, "target_user_id", *profile.ImpersonatingUserID)
		} else {
			acting = tenant.ActingAsImpersonating(profile, target)
		}
	}
	effective := acting.Resolve()

	view := &ProfileView{
		UserID:              profile.UserID,
		FullName:            profile.FullName,
		Role:                effective.Role,
		ActiveCompanyID:     effective.ActiveCompanyID,
		IsSuperAdmin:        effective.IsSuperAdmin(),
		IsRealSuperAdmin:    effective.IsRealAdmin,
		Companies:           []CompanyOption{},
		ImpersonatingUserID: profile.ImpersonatingUserID,
	}

	companyIDs, err := uc.mappingRepo.UserCompanies(ctx, profile.UserID)
	if err != nil {
		uc.logger.Warnw("failed to load user companies", "user_id", profile.UserID, "error", err)
		return view, nil
	}

	for _, id := range companyIDs {
		company, err := uc.companyRepo.GetByID(ctx, id)
		if err != nil || company == nil {
			uc.logger.Warnw("skipping unresolvable company membership", "company_id", id, "error", err)
			continue
		}
		view.Companies = append(view.Companies, CompanyOption{ID: company.ID, Name: company.Name})
	}

	return view, nil
}
