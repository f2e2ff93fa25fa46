package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/infrastructure/persistence/models"
	"pulseboard/internal/shared/logger"
)

// ProfileRepository persists user profiles.
type ProfileRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewProfileRepository(db *gorm.DB, logger logger.Interface) tenant.ProfileRepository {
	return &ProfileRepository{db: db, logger: logger}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*tenant.UserProfile, error) {
	var model models.UserProfileModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profileToEntity(&model), nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile *tenant.UserProfile) error {
	if err := r.db.WithContext(ctx).Create(profileToModel(profile)).Error; err != nil {
		r.logger.Errorw("failed to create profile", "user_id", profile.UserID, "error", err)
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *tenant.UserProfile) error {
	err := r.db.WithContext(ctx).Model(&models.UserProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]interface{}{
			"full_name":             profile.FullName,
			"role":                  string(profile.Role),
			"active_company_id":     profile.ActiveCompanyID,
			"impersonating_user_id": profile.ImpersonatingUserID,
		}).Error
	if err != nil {
		r.logger.Errorw("failed to update profile", "user_id", profile.UserID, "error", err)
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]*tenant.UserProfile, error) {
	var rows []*models.UserProfileModel
	if err := r.db.WithContext(ctx).Order("full_name").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list profiles", "error", err)
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]*tenant.UserProfile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, profileToEntity(row))
	}
	return profiles, nil
}

func (r *ProfileRepository) SetActiveCompany(ctx context.Context, userID string, companyID uint) error {
	err := r.db.WithContext(ctx).Model(&models.UserProfileModel{}).
		Where("user_id = ?", userID).
		Update("active_company_id", companyID).Error
	if err != nil {
		r.logger.Errorw("failed to set active company",
			"user_id", userID, "company_id", companyID, "error", err)
		return fmt.Errorf("failed to set active company: %w", err)
	}
	return nil
}

func (r *ProfileRepository) SetImpersonation(ctx context.Context, userID string, targetUserID *string) error {
	err := r.db.WithContext(ctx).Model(&models.UserProfileModel{}).
		Where("user_id = ?", userID).
		Update("impersonating_user_id", targetUserID).Error
	if err != nil {
		r.logger.Errorw("failed to set impersonation", "user_id", userID, "error", err)
		return fmt.Errorf("failed to set impersonation: %w", err)
	}
	return nil
}

func profileToModel(p *tenant.UserProfile) *models.UserProfileModel {
	return &models.UserProfileModel{
		UserID:              p.UserID,
		FullName:            p.FullName,
		Role:                string(p.Role),
		ActiveCompanyID:     p.ActiveCompanyID,
		ImpersonatingUserID: p.ImpersonatingUserID,
	}
}

func profileToEntity(m *models.UserProfileModel) *tenant.UserProfile {
	return &tenant.UserProfile{
		UserID:              m.UserID,
		FullName:            m.FullName,
		Role:                tenant.Role(m.Role),
		ActiveCompanyID:     m.ActiveCompanyID,
		ImpersonatingUserID: m.ImpersonatingUserID,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
