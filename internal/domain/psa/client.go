// Package psa holds the locally cached records pulled from the PSA
// ticketing provider, plus the sync audit trail. These records are
// snapshots of upstream state keyed by provider-assigned IDs; the sync
// engine owns all writes, the query layer only reads.
package psa

import "time"

// Client is a PSA account (customer organisation) cached locally.
// Rows are upserted by the sync engine and never deleted; upstream
// deletions are not reconciled.
type Client struct {
	ID             int
	Name           string
	TopLevelID     *int
	TopLevelName   *string
	Inactive       bool
	LastTicketDate *time.Time
	UpdatedAt      time.Time
}
