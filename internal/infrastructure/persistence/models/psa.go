// Package models holds the GORM persistence models. They are the
// anti-corruption layer between domain entities and table shapes.
package models

import "time"

// PSAClientModel caches one PSA account. The primary key is the
// provider-assigned ID, not an auto-increment.
type PSAClientModel struct {
	ID             int     `gorm:"primarykey;autoIncrement:false"`
	Name           string  `gorm:"not null;size:255"`
	TopLevelID     *int    `gorm:"index"`
	TopLevelName   *string `gorm:"size:255"`
	Inactive       bool    `gorm:"not null;default:false"`
	LastTicketDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PSAClientModel) TableName() string {
	return "psa_clients"
}

// PSATicketModel caches one PSA ticket keyed by provider ID.
type PSATicketModel struct {
	ID           int    `gorm:"primarykey;autoIncrement:false"`
	ClientID     int    `gorm:"not null;index"`
	StatusID     int    `gorm:"not null"`
	StatusName   string `gorm:"size:100"`
	DateOccurred time.Time
	DateClosed   *time.Time
	IsClosed     bool `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PSATicketModel) TableName() string {
	return "psa_tickets"
}

// PSAFeedbackModel caches one satisfaction response keyed by provider ID.
// Integrity with psa_tickets is enforced by filtering before upsert, not
// by a foreign-key constraint that would reject a whole batch.
type PSAFeedbackModel struct {
	ID        int `gorm:"primarykey;autoIncrement:false"`
	TicketID  int `gorm:"not null;index"`
	Score     *int
	Date      *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PSAFeedbackModel) TableName() string {
	return "psa_feedback"
}

// SyncRecordModel is the append-only sync audit trail.
type SyncRecordModel struct {
	ID            uint      `gorm:"primarykey"`
	SyncType      string    `gorm:"not null;size:20;index"`
	Timestamp     time.Time `gorm:"not null;index"`
	RecordsSynced int       `gorm:"not null;default:0"`
	Status        string    `gorm:"not null;size:10"`
	ErrorMessage  *string   `gorm:"size:2000"`
	TaskID        *string   `gorm:"size:36;index"`
}

func (SyncRecordModel) TableName() string {
	return "sync_records"
}
