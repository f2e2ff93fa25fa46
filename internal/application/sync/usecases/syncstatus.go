package usecases

import (
	"context"
	"fmt"
	"time"

	"pulseboard/internal/domain/psa"
	"pulseboard/internal/shared/logger"
)

// SyncRecordView is the API shape of one sync attempt.
type SyncRecordView struct {
	SyncType      string  `json:"syncType"`
	Timestamp     string  `json:"timestamp"`
	RecordsSynced int     `json:"recordsSynced"`
	Status        string  `json:"status"`
	ErrorMessage  *string `json:"errorMessage,omitempty"`
	TaskID        *string `json:"taskId,omitempty"`
}

// GetSyncStatusUseCase returns the most recent sync attempts, newest
// first, for the status page.
type GetSyncStatusUseCase struct {
	syncRepo psa.SyncRecordRepository
	logger   logger.Interface
}

func NewGetSyncStatusUseCase(syncRepo psa.SyncRecordRepository, logger logger.Interface) *GetSyncStatusUseCase {
	return &GetSyncStatusUseCase{
		syncRepo: syncRepo,
		logger:   logger,
	}
}

func (uc *GetSyncStatusUseCase) Execute(ctx context.Context, limit int) ([]SyncRecordView, error) {
	records, err := uc.syncRepo.Latest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load sync history: %w", err)
	}

	views := make([]SyncRecordView, 0, len(records))
	for _, r := range records {
		views = append(views, SyncRecordView{
			SyncType:      string(r.SyncType),
			Timestamp:     r.Timestamp.UTC().Format(time.RFC3339),
			RecordsSynced: r.RecordsSynced,
			Status:        string(r.Status),
			ErrorMessage:  r.ErrorMessage,
			TaskID:        r.TaskID,
		})
	}
	return views, nil
}
