package psa

import (
	"context"
	"time"
)

// TicketFilter narrows ticket reads. ClientIDs is the tenant restriction
// set; a nil slice means unrestricted, an empty non-nil slice must yield
// no rows.
type TicketFilter struct {
	ClientIDs []int
	ClientID  *int
	StartDate *time.Time
	EndDate   *time.Time
}

type ClientRepository interface {
	UpsertBatch(ctx context.Context, clients []*Client) error
	List(ctx context.Context, ids []int) ([]*Client, error)
	GetByIDs(ctx context.Context, ids []int) (map[int]*Client, error)
	// RecomputeLastTicketDates refreshes each client's last ticket date
	// from the ticket table.
	RecomputeLastTicketDates(ctx context.Context) error
}

type TicketRepository interface {
	UpsertBatch(ctx context.Context, tickets []*Ticket) error
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
	// ListIDs returns the full set of locally stored ticket IDs, used for
	// dependent-record filtering during feedback sync.
	ListIDs(ctx context.Context) (map[int]struct{}, error)
}

// FeedbackFilter scopes feedback through its ticket's client, since
// feedback rows carry no direct client reference.
type FeedbackFilter struct {
	ClientIDs []int
	StartDate *time.Time
	EndDate   *time.Time
}

type FeedbackRepository interface {
	UpsertBatch(ctx context.Context, feedback []*Feedback) error
	List(ctx context.Context, filter FeedbackFilter) ([]*Feedback, error)
}

type SyncRecordRepository interface {
	Append(ctx context.Context, record *SyncRecord) error
	Latest(ctx context.Context, limit int) ([]*SyncRecord, error)
}
