package migration

import (
	"pulseboard/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PSAClientModel{},
		&models.PSATicketModel{},
		&models.PSAFeedbackModel{},
		&models.SyncRecordModel{},
		&models.CompanyModel{},
		&models.UserProfileModel{},
		&models.UserCompanyModel{},
		&models.CompanyPSAClientModel{},
		&models.CompanyRMMOrgModel{},
		&models.CompanyDomainModel{},
	}
}
