package usecases

import (
	"context"

	"pulseboard/internal/domain/psa"
	"pulseboard/internal/shared/logger"
)

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
	return map[int]*psa.Client{}, nil
}

func (m *mockClientRepo) RecomputeLastTicketDates(ctx context.Context) error {
	if m.recomputeLastTicketDatesFunc != nil {
		return m.recomputeLastTicketDatesFunc(ctx)
	}
	return nil
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

func intPtr(v int) *int { return &v }
