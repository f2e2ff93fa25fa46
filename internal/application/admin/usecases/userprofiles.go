package usecases

import (
	"context"
	"fmt"
	"strings"

	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
)

type UpsertUserProfileCommand struct {
	UserID          string
	FullName        string
	Role            tenant.Role
	ActiveCompanyID *uint
	CompanyIDs      []uint
}

// UpsertUserProfileUseCase provisions or updates a dashboard user.
// Users authenticate externally; this record decides what they see.
type UpsertUserProfileUseCase struct {
	profileRepo tenant.ProfileRepository
	mappingRepo tenant.MappingRepository
	logger      logger.Interface
}

func NewUpsertUserProfileUseCase(
	profileRepo tenant.ProfileRepository,
	mappingRepo tenant.MappingRepository,
	logger logger.Interface,
) *UpsertUserProfileUseCase {
	return &UpsertUserProfileUseCase{
		profileRepo: profileRepo,
		mappingRepo: mappingRepo,
		logger:      logger,
	}
}

func (uc *UpsertUserProfileUseCase) Execute(ctx context.Context, cmd UpsertUserProfileCommand) (*tenant.UserProfile, error) {
	userID := strings.TrimSpace(cmd.UserID)
	if userID == "" {
		return nil, errors.NewValidationError("user id is required")
	}
	if !cmd.Role.IsValid() {
		return nil, errors.NewValidationError("invalid role")
	}

	existing, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile := existing
	if profile == nil {
		profile = &tenant.UserProfile{UserID: userID}
	}
	profile.FullName = cmd.FullName
	profile.Role = cmd.Role
	if cmd.ActiveCompanyID != nil {
		profile.ActiveCompanyID = cmd.ActiveCompanyID
	}

	if existing == nil {
		err = uc.profileRepo.Save(ctx, profile)
	} else {
		err = uc.profileRepo.Update(ctx, profile)
	}
	if err != nil {
		uc.logger.Errorw("failed to persist profile", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to persist profile: %w", err)
	}

	if cmd.CompanyIDs != nil {
		if err := uc.reconcileMemberships(ctx, userID, cmd.CompanyIDs); err != nil {
			return nil, err
		}
	}

	uc.logger.Infow("user profile upserted", "user_id", userID, "role", cmd.Role)
	return profile, nil
}

func (uc *UpsertUserProfileUseCase) reconcileMemberships(ctx context.Context, userID string, wanted []uint) error {
	current, err := uc.mappingRepo.UserCompanies(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load memberships", "error", err, "user_id", userID)
		return fmt.Errorf("failed to load memberships: %w", err)
	}

	wantedSet := make(map[uint]struct{}, len(wanted))
	for _, id := range wanted {
		wantedSet[id] = struct{}{}
	}
	currentSet := make(map[uint]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}

	for _, id := range wanted {
		if _, ok := currentSet[id]; !ok {
			if err := uc.mappingRepo.AddUserCompany(ctx, &tenant.UserCompany{UserID: userID, CompanyID: id}); err != nil {
				uc.logger.Errorw("failed to add membership", "error", err, "user_id", userID, "company_id", id)
				return fmt.Errorf("failed to add membership: %w", err)
			}
		}
	}
	for _, id := range current {
		if _, ok := wantedSet[id]; !ok {
			if err := uc.mappingRepo.RemoveUserCompany(ctx, userID, id); err != nil {
				uc.logger.Errorw("failed to remove membership", "error", err, "user_id", userID, "company_id", id)
				return fmt.Errorf("failed to remove membership: %w", err)
			}
		}
	}
	return nil
}

type ListUserProfilesUseCase struct {
	profileRepo tenant.ProfileRepository
	logger      logger.Interface
}

func NewListUserProfilesUseCase(profileRepo tenant.ProfileRepository, logger logger.Interface) *ListUserProfilesUseCase {
	return &ListUserProfilesUseCase{profileRepo: profileRepo, logger: logger}
}

func (uc *ListUserProfilesUseCase) Execute(ctx context.Context) ([]*tenant.UserProfile, error) {
	profiles, err := uc.profileRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list profiles", "error", err)
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	if profiles == nil {
		profiles = []*tenant.UserProfile{}
	}
	return profiles, nil
}
