package psa

import "time"

type SyncType string

const (
	SyncTypeClients  SyncType = "clients"
	SyncTypeTickets  SyncType = "tickets"
	SyncTypeFeedback SyncType = "feedback"
)

type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusFailed  SyncStatus = "failed"
)

// SyncRecord is one row of the append-only sync audit trail. A row is
// written after every sync attempt, success or failure, and is never
// updated or deleted.
type SyncRecord struct {
	ID            uint
	SyncType      SyncType
	Timestamp     time.Time
	RecordsSynced int
	Status        SyncStatus
	ErrorMessage  *string
	TaskID        *string
}

// NewSyncSuccess builds a success audit row.
func NewSyncSuccess(syncType SyncType, records int, taskID *string) *SyncRecord {
	return &SyncRecord{
		SyncType:      syncType,
		Timestamp:     time.Now().UTC(),
		RecordsSynced: records,
		Status:        SyncStatusSuccess,
		TaskID:        taskID,
	}
}

// NewSyncFailure builds a failure audit row carrying the error message.
func NewSyncFailure(syncType SyncType, err error, taskID *string) *SyncRecord {
	msg := err.Error()
	return &SyncRecord{
		SyncType:     syncType,
		Timestamp:    time.Now().UTC(),
		Status:       SyncStatusFailed,
		ErrorMessage: &msg,
		TaskID:       taskID,
	}
}
