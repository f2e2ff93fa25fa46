package usecases

import (
	"context"
	"time"

	"pulseboard/internal/domain/psa"
	"pulseboard/internal/shared/logger"
)

type mockFetcher struct {
	fetchClientsFunc  func(ctx context.Context) ([]*psa.Client, error)
	fetchTicketsFunc  func(ctx context.Context, start, end time.Time) ([]*psa.Ticket, error)
	fetchFeedbackFunc func(ctx context.Context) ([]*psa.Feedback, error)
}

func (m *mockFetcher) FetchClients(ctx context.Context) ([]*psa.Client, error) {
	if m.fetchClientsFunc != nil {
		return m.fetchClientsFunc(ctx)
	}
	return nil, nil
}

func (m *mockFetcher) FetchTickets(ctx context.Context, start, end time.Time) ([]*psa.Ticket, error) {
	if m.fetchTicketsFunc != nil {
		return m.fetchTicketsFunc(ctx, start, end)
	}
	return nil, nil
}

func (m *mockFetcher) FetchFeedback(ctx context.Context) ([]*psa.Feedback, error) {
	if m.fetchFeedbackFunc != nil {
		return m.fetchFeedbackFunc(ctx)
	}
	return nil, nil
}

type mockClientRepo struct {
	upsertBatchFunc              func(ctx context.Context, clients []*psa.Client) error
	listFunc                     func(ctx context.Context, ids []int) ([]*psa.Client, error)
	getByIDsFunc                 func(ctx context.Context, ids []int) (map[int]*psa.Client, error)
	recomputeLastTicketDatesFunc func(ctx context.Context) error
}

func (m *mockClientRepo) UpsertBatch(ctx context.Context, clients []*psa.Client) error {
	if m.upsertBatchFunc != nil {
		return m.upsertBatchFunc(ctx, clients)
	}
	return nil
}

func (m *mockClientRepo) List(ctx context.Context, ids []int) ([]*psa.Client, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockClientRepo) GetByIDs(ctx context.Context, ids []int) (map[int]*psa.Client, error) {
	if m.getByIDsFunc != nil {
		return m.getByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockClientRepo) RecomputeLastTicketDates(ctx context.Context) error {
	if m.recomputeLastTicketDatesFunc != nil {
		return m.recomputeLastTicketDatesFunc(ctx)
	}
	return nil
}

type mockTicketRepo struct {
	upsertBatchFunc func(ctx context.Context, tickets []*psa.Ticket) error
	listFunc        func(ctx context.Context, filter psa.TicketFilter) ([]*psa.Ticket, error)
	listIDsFunc     func(ctx context.Context) (map[int]struct{}, error)
}

func (m *mockTicketRepo) UpsertBatch(ctx context.Context, tickets []*psa.Ticket) error {
	if m.upsertBatchFunc != nil {
		return m.upsertBatchFunc(ctx, tickets)
	}
	return nil
}

func (m *mockTicketRepo) List(ctx context.Context, filter psa.TicketFilter) ([]*psa.Ticket, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepo) ListIDs(ctx context.Context) (map[int]struct{}, error) {
	if m.listIDsFunc != nil {
		return m.listIDsFunc(ctx)
	}
	return map[int]struct{}{}, nil
}

type mockFeedbackRepo struct {
	upsertBatchFunc func(ctx context.Context, feedback []*psa.Feedback) error
	listFunc        func(ctx context.Context, filter psa.FeedbackFilter) ([]*psa.Feedback, error)
}

func (m *mockFeedbackRepo) UpsertBatch(ctx context.Context, feedback []*psa.Feedback) error {
	if m.upsertBatchFunc != nil {
		return m.upsertBatchFunc(ctx, feedback)
	}
	return nil
}

func (m *mockFeedbackRepo) List(ctx context.Context, filter psa.FeedbackFilter) ([]*psa.Feedback, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

type mockSyncRepo struct {
	records    []*psa.SyncRecord
	appendFunc func(ctx context.Context, record *psa.SyncRecord) error
	latestFunc func(ctx context.Context, limit int) ([]*psa.SyncRecord, error)
}

func (m *mockSyncRepo) Append(ctx context.Context, record *psa.SyncRecord) error {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, record)
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockSyncRepo) Latest(ctx context.Context, limit int) ([]*psa.SyncRecord, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, limit)
	}
	return m.records, nil
}

func (m *mockSyncRepo) byType(syncType psa.SyncType) []*psa.SyncRecord {
	var out []*psa.SyncRecord
	for _, r := range m.records {
		if r.SyncType == syncType {
			out = append(out, r)
		}
	}
	return out
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
