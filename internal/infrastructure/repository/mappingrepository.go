package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/infrastructure/persistence/models"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
)

// MappingRepository persists the company-to-external-ID mapping tables
// and user-company membership.
type MappingRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewMappingRepository(db *gorm.DB, logger logger.Interface) tenant.MappingRepository {
	return &MappingRepository{db: db, logger: logger}
}

func (r *MappingRepository) PSAClientIDs(ctx context.Context, companyID uint) ([]int, error) {
	var ids []int
	err := r.db.WithContext(ctx).Model(&models.CompanyPSAClientModel{}).
		Where("company_id = ?", companyID).
		Pluck("psa_client_id", &ids).Error
	if err != nil {
		r.logger.Errorw("failed to load PSA client mapping", "company_id", companyID, "error", err)
		return nil, fmt.Errorf("failed to load PSA client mapping: %w", err)
	}
	return ids, nil
}

func (r *MappingRepository) RMMOrgIDs(ctx context.Context, companyID uint) ([]int, error) {
	var ids []int
	err := r.db.WithContext(ctx).Model(&models.CompanyRMMOrgModel{}).
		Where("company_id = ?", companyID).
		Pluck("rmm_org_id", &ids).Error
	if err != nil {
		r.logger.Errorw("failed to load RMM org mapping", "company_id", companyID, "error", err)
		return nil, fmt.Errorf("failed to load RMM org mapping: %w", err)
	}
	return ids, nil
}

func (r *MappingRepository) DomainNames(ctx context.Context, companyID uint) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&models.CompanyDomainModel{}).
		Where("company_id = ?", companyID).
		Pluck("domain_name", &names).Error
	if err != nil {
		r.logger.Errorw("failed to load domain mapping", "company_id", companyID, "error", err)
		return nil, fmt.Errorf("failed to load domain mapping: %w", err)
	}
	return names, nil
}

func (r *MappingRepository) AddPSAClient(ctx context.Context, m *tenant.CompanyPSAClient) error {
	model := &models.CompanyPSAClientModel{CompanyID: m.CompanyID, PSAClientID: m.PSAClientID}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("mapping already exists")
		}
		r.logger.Errorw("failed to add PSA client mapping", "error", err)
		return fmt.Errorf("failed to add PSA client mapping: %w", err)
	}
	m.ID = model.ID
	return nil
}

func (r *MappingRepository) RemovePSAClient(ctx context.Context, companyID uint, psaClientID int) error {
	result := r.db.WithContext(ctx).
		Where("company_id = ? AND psa_client_id = ?", companyID, psaClientID).
		Delete(&models.CompanyPSAClientModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove PSA client mapping: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("mapping not found")
	}
	return nil
}

func (r *MappingRepository) ListPSAClients(ctx context.Context, companyID uint) ([]*tenant.CompanyPSAClient, error) {
	var rows []*models.CompanyPSAClientModel
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list PSA client mappings: %w", err)
	}
	mappings := make([]*tenant.CompanyPSAClient, 0, len(rows))
	for _, row := range rows {
		mappings = append(mappings, &tenant.CompanyPSAClient{
			ID: row.ID, CompanyID: row.CompanyID, PSAClientID: row.PSAClientID,
		})
	}
	return mappings, nil
}

func (r *MappingRepository) AddRMMOrg(ctx context.Context, m *tenant.CompanyRMMOrg) error {
	model := &models.CompanyRMMOrgModel{
		CompanyID: m.CompanyID, RMMOrgID: m.RMMOrgID, OrgName: m.OrgName,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("mapping already exists")
		}
		r.logger.Errorw("failed to add RMM org mapping", "error", err)
		return fmt.Errorf("failed to add RMM org mapping: %w", err)
	}
	m.ID = model.ID
	return nil
}

func (r *MappingRepository) RemoveRMMOrg(ctx context.Context, companyID uint, rmmOrgID int) error {
	result := r.db.WithContext(ctx).
		Where("company_id = ? AND rmm_org_id = ?", companyID, rmmOrgID).
		Delete(&models.CompanyRMMOrgModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove RMM org mapping: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("mapping not found")
	}
	return nil
}

func (r *MappingRepository) ListRMMOrgs(ctx context.Context, companyID uint) ([]*tenant.CompanyRMMOrg, error) {
	var rows []*models.CompanyRMMOrgModel
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list RMM org mappings: %w", err)
	}
	mappings := make([]*tenant.CompanyRMMOrg, 0, len(rows))
	for _, row := range rows {
		mappings = append(mappings, &tenant.CompanyRMMOrg{
			ID: row.ID, CompanyID: row.CompanyID, RMMOrgID: row.RMMOrgID, OrgName: row.OrgName,
		})
	}
	return mappings, nil
}

// AssignDomain claims a domain for a company. The unique index on the
// domain name makes double assignment a conflict.
func (r *MappingRepository) AssignDomain(ctx context.Context, m *tenant.CompanyDomain) error {
	model := &models.CompanyDomainModel{CompanyID: m.CompanyID, DomainName: m.DomainName}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("domain is already assigned to a company")
		}
		r.logger.Errorw("failed to assign domain", "domain", m.DomainName, "error", err)
		return fmt.Errorf("failed to assign domain: %w", err)
	}
	m.ID = model.ID
	return nil
}

func (r *MappingRepository) UnassignDomain(ctx context.Context, domainName string) error {
	result := r.db.WithContext(ctx).
		Where("domain_name = ?", domainName).
		Delete(&models.CompanyDomainModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to unassign domain: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("domain assignment not found")
	}
	return nil
}

func (r *MappingRepository) ListDomainAssignments(ctx context.Context) ([]*tenant.CompanyDomain, error) {
	var rows []*models.CompanyDomainModel
	if err := r.db.WithContext(ctx).Order("domain_name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list domain assignments: %w", err)
	}
	assignments := make([]*tenant.CompanyDomain, 0, len(rows))
	for _, row := range rows {
		assignments = append(assignments, &tenant.CompanyDomain{
			ID: row.ID, CompanyID: row.CompanyID, DomainName: row.DomainName,
		})
	}
	return assignments, nil
}

func (r *MappingRepository) UserCompanies(ctx context.Context, userID string) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.UserCompanyModel{}).
		Where("user_id = ?", userID).
		Pluck("company_id", &ids).Error
	if err != nil {
		r.logger.Errorw("failed to load user companies", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load user companies: %w", err)
	}
	return ids, nil
}

func (r *MappingRepository) AddUserCompany(ctx context.Context, m *tenant.UserCompany) error {
	model := &models.UserCompanyModel{UserID: m.UserID, CompanyID: m.CompanyID}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("user already belongs to company")
		}
		return fmt.Errorf("failed to add user company: %w", err)
	}
	m.ID = model.ID
	return nil
}

func (r *MappingRepository) RemoveUserCompany(ctx context.Context, userID string, companyID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		Delete(&models.UserCompanyModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove user company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("membership not found")
	}
	return nil
}
