package usecases

import (
	"context"
	"fmt"

	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
)

type StartImpersonationCommand struct {
	AdminUserID  string
	TargetUserID string
}

type StopImpersonationCommand struct {
	AdminUserID string
}

// ImpersonateUseCase lets a super admin view the dashboard exactly as a
// customer user sees it. Only real super admins may start, and the
// target must be a customer to keep admin surfaces out of the borrowed
// view.
type ImpersonateUseCase struct {
	profileRepo tenant.ProfileRepository
	logger      logger.Interface
}

func NewImpersonateUseCase(profileRepo tenant.ProfileRepository, logger logger.Interface) *ImpersonateUseCase {
	return &ImpersonateUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *ImpersonateUseCase) Start(ctx context.Context, cmd StartImpersonationCommand) error {
	admin, err := uc.profileRepo.GetByUserID(ctx, cmd.AdminUserID)
	if err != nil {
		uc.logger.Errorw("failed to load admin profile", "error", err, "user_id", cmd.AdminUserID)
		return fmt.Errorf("failed to load admin profile: %w", err)
	}
	if admin == nil || admin.Role != tenant.RoleSuperAdmin {
		return errors.NewForbiddenError("only super admins may impersonate")
	}

	if cmd.TargetUserID == cmd.AdminUserID {
		return errors.NewValidationError("cannot impersonate yourself")
	}

	target, err := uc.profileRepo.GetByUserID(ctx, cmd.TargetUserID)
	if err != nil {
		uc.logger.Errorw("failed to load target profile", "error", err, "target_user_id", cmd.TargetUserID)
		return fmt.Errorf("failed to load target profile: %w", err)
	}
	if target == nil {
		return errors.NewNotFoundError("target user not found")
	}
	if target.Role != tenant.RoleCustomer {
		return errors.NewValidationError("impersonation target must be a customer")
	}

	if err := uc.profileRepo.SetImpersonation(ctx, cmd.AdminUserID, &cmd.TargetUserID); err != nil {
		uc.logger.Errorw("failed to start impersonation", "error", err,
			"user_id", cmd.AdminUserID, "target_user_id", cmd.TargetUserID)
		return fmt.Errorf("failed to start impersonation: %w", err)
	}

	uc.logger.Infow("impersonation started",
		"admin_user_id", cmd.AdminUserID, "target_user_id", cmd.TargetUserID)
	return nil
}

func (uc *ImpersonateUseCase) Stop(ctx context.Context, cmd StopImpersonationCommand) error {
	admin, err := uc.profileRepo.GetByUserID(ctx, cmd.AdminUserID)
	if err != nil {
		uc.logger.Errorw("failed to load admin profile", "error", err, "user_id", cmd.AdminUserID)
		return fmt.Errorf("failed to load admin profile: %w", err)
	}
	if admin == nil {
		return errors.NewForbiddenError("no profile provisioned for user")
	}

	// Stopping when not impersonating is a no-op, not an error.
	if err := uc.profileRepo.SetImpersonation(ctx, cmd.AdminUserID, nil); err != nil {
		uc.logger.Errorw("failed to stop impersonation", "error", err, "user_id", cmd.AdminUserID)
		return fmt.Errorf("failed to stop impersonation: %w", err)
	}

	uc.logger.Infow("impersonation stopped", "admin_user_id", cmd.AdminUserID)
	return nil
}
