package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/infrastructure/persistence/models"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
)

// CompanyRepository persists tenant companies.
type CompanyRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCompanyRepository(db *gorm.DB, logger logger.Interface) tenant.CompanyRepository {
	return &CompanyRepository{db: db, logger: logger}
}

func (r *CompanyRepository) Create(ctx context.Context, company *tenant.Company) error {
	model, err := companyToModel(company)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("company name already exists")
		}
		r.logger.Errorw("failed to create company", "name", company.Name, "error", err)
		return fmt.Errorf("failed to create company: %w", err)
	}
	company.ID = model.ID
	return nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *tenant.Company) error {
	model, err := companyToModel(company)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&models.CompanyModel{}).
		Where("id = ?", company.ID).
		Updates(map[string]interface{}{
			"name":     model.Name,
			"logo_url": model.LogoURL,
			"settings": model.Settings,
		})
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("company name already exists")
		}
		r.logger.Errorw("failed to update company", "id", company.ID, "error", result.Error)
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("company not found")
	}
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, companyID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CompanyModel{}, companyID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete company", "id", companyID, "error", result.Error)
		return fmt.Errorf("failed to delete company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("company not found")
	}
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, companyID uint) (*tenant.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, companyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get company", "id", companyID, "error", err)
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return companyToEntity(&model), nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]*tenant.Company, error) {
	var rows []*models.CompanyModel
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list companies", "error", err)
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	companies := make([]*tenant.Company, 0, len(rows))
	for _, row := range rows {
		companies = append(companies, companyToEntity(row))
	}
	return companies, nil
}

func companyToModel(c *tenant.Company) (*models.CompanyModel, error) {
	model := &models.CompanyModel{
		ID:      c.ID,
		Name:    c.Name,
		LogoURL: c.LogoURL,
	}
	if c.Settings != nil {
		raw, err := json.Marshal(c.Settings)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal company settings: %w", err)
		}
		model.Settings = datatypes.JSON(raw)
	}
	return model, nil
}

func companyToEntity(m *models.CompanyModel) *tenant.Company {
	company := &tenant.Company{
		ID:        m.ID,
		Name:      m.Name,
		LogoURL:   m.LogoURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if len(m.Settings) > 0 {
		// Settings are display preferences; a malformed blob degrades to nil.
		_ = json.Unmarshal(m.Settings, &company.Settings)
	}
	return company
}
