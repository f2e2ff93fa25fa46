package usecases

import (
	"context"
	"fmt"

	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
)

type ResolveContextCommand struct {
	UserID string
}

// ResolveContextUseCase loads the caller's profile and collapses any
// active impersonation into the effective tenancy context. Every
// authenticated request runs through this before touching data.
type ResolveContextUseCase struct {
	profileRepo tenant.ProfileRepository
	logger      logger.Interface
}

func NewResolveContextUseCase(profileRepo tenant.ProfileRepository, logger logger.Interface) *ResolveContextUseCase {
	return &ResolveContextUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *ResolveContextUseCase) Execute(ctx context.Context, cmd ResolveContextCommand) (*tenant.EffectiveContext, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user profile", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}
	if profile == nil {
		return nil, errors.NewForbiddenError("no profile provisioned for user")
	}

	acting := tenant.ActingAsSelf(profile)
	if profile.IsImpersonating() {
		target, err := uc.profileRepo.GetByUserID(ctx, *profile.ImpersonatingUserID)
		if err != nil {
			uc.logger.Errorw("failed to load impersonation target", "error", err,
				"user_id", cmd.UserID, "target_user_id", *profile.ImpersonatingUserID)
			return nil, fmt.Errorf("failed to load impersonation target: %w", err)
		}
		if target == nil {
			// Stale impersonation pointer. Fall back to the admin's own
			// view rather than locking them out.
			uc.logger.Warnw("impersonation target profile missing, acting as self",
				"user_id", cmd.UserID, "target_user_id", *profile.ImpersonatingUserID)
		} else {
			acting = tenant.ActingAsImpersonating(profile, target)
		}
	}

	effective := acting.Resolve()
	if !effective.IsSuperAdmin() && effective.ActiveCompanyID == nil {
		return nil, errors.NewForbiddenError("no active company selected")
	}

	return &effective, nil
}
