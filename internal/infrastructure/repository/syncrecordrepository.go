package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pulseboard/internal/domain/psa"
	"pulseboard/internal/infrastructure/persistence/models"
	"pulseboard/internal/shared/logger"
)

// SyncRecordRepository appends to and reads the sync audit trail.
type SyncRecordRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSyncRecordRepository(db *gorm.DB, logger logger.Interface) psa.SyncRecordRepository {
	return &SyncRecordRepository{db: db, logger: logger}
}

// Append writes one audit row. Rows are never updated or deleted.
func (r *SyncRecordRepository) Append(ctx context.Context, record *psa.SyncRecord) error {
	model := &models.SyncRecordModel{
		SyncType:      string(record.SyncType),
		Timestamp:     record.Timestamp,
		RecordsSynced: record.RecordsSynced,
		Status:        string(record.Status),
		ErrorMessage:  record.ErrorMessage,
		TaskID:        record.TaskID,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append sync record",
			"sync_type", record.SyncType, "error", err)
		return fmt.Errorf("failed to append sync record: %w", err)
	}
	record.ID = model.ID
	return nil
}

// Latest returns the most recent audit rows, newest first.
func (r *SyncRecordRepository) Latest(ctx context.Context, limit int) ([]*psa.SyncRecord, error) {
	var rows []*models.SyncRecordModel
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to load sync records", "error", err)
		return nil, fmt.Errorf("failed to load sync records: %w", err)
	}

	records := make([]*psa.SyncRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &psa.SyncRecord{
			ID:            row.ID,
			SyncType:      psa.SyncType(row.SyncType),
			Timestamp:     row.Timestamp,
			RecordsSynced: row.RecordsSynced,
			Status:        psa.SyncStatus(row.Status),
			ErrorMessage:  row.ErrorMessage,
			TaskID:        row.TaskID,
		})
	}
	return records, nil
}
