package models

import (
	"time"

	"gorm.io/datatypes"
)

type CompanyModel struct {
	ID        uint           `gorm:"primarykey"`
	Name      string         `gorm:"uniqueIndex;not null;size:255"`
	LogoURL   *string        `gorm:"size:500"`
	Settings  datatypes.JSON `gorm:"type:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CompanyModel) TableName() string {
	return "companies"
}

type UserProfileModel struct {
	UserID              string `gorm:"primarykey;size:64"`
	FullName            string `gorm:"size:255"`
	Role                string `gorm:"not null;size:20"`
	ActiveCompanyID     *uint  `gorm:"index"`
	ImpersonatingUserID *string `gorm:"size:64"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (UserProfileModel) TableName() string {
	return "user_profiles"
}

type UserCompanyModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    string `gorm:"not null;size:64;uniqueIndex:idx_user_company"`
	CompanyID uint   `gorm:"not null;uniqueIndex:idx_user_company;index"`
	CreatedAt time.Time
}

func (UserCompanyModel) TableName() string {
	return "user_companies"
}

type CompanyPSAClientModel struct {
	ID          uint `gorm:"primarykey"`
	CompanyID   uint `gorm:"not null;uniqueIndex:idx_company_psa_client;index"`
	PSAClientID int  `gorm:"not null;uniqueIndex:idx_company_psa_client"`
	CreatedAt   time.Time
}

func (CompanyPSAClientModel) TableName() string {
	return "company_psa_clients"
}

type CompanyRMMOrgModel struct {
	ID        uint   `gorm:"primarykey"`
	CompanyID uint   `gorm:"not null;uniqueIndex:idx_company_rmm_org;index"`
	RMMOrgID  int    `gorm:"not null;uniqueIndex:idx_company_rmm_org"`
	OrgName   string `gorm:"size:255"`
	CreatedAt time.Time
}

func (CompanyRMMOrgModel) TableName() string {
	return "company_rmm_orgs"
}

// CompanyDomainModel assigns a domain to a company. The unique index on
// the domain name alone keeps each domain owned by at most one company.
type CompanyDomainModel struct {
	ID         uint   `gorm:"primarykey"`
	CompanyID  uint   `gorm:"not null;index"`
	DomainName string `gorm:"uniqueIndex;not null;size:255"`
	CreatedAt  time.Time
}

func (CompanyDomainModel) TableName() string {
	return "company_domains"
}
