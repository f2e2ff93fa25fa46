package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/internal/domain/psa"
)

func newFullSync(fetcher *mockFetcher, clientRepo *mockClientRepo, ticketRepo *mockTicketRepo, feedbackRepo *mockFeedbackRepo, syncRepo *mockSyncRepo) *FullSyncUseCase {
	log := &mockLogger{}
	return NewFullSyncUseCase(
		NewSyncClientsUseCase(fetcher, clientRepo, syncRepo, log),
		NewSyncTicketsUseCase(fetcher, ticketRepo, clientRepo, syncRepo, 12, 1000, log),
		NewSyncFeedbackUseCase(fetcher, feedbackRepo, ticketRepo, syncRepo, log),
		log,
	)
}

func TestFullSync_AllStepsSucceed(t *testing.T) {
	fetcher := &mockFetcher{
		fetchClientsFunc: func(ctx context.Context) ([]*psa.Client, error) {
			return []*psa.Client{{ID: 1, Name: "Acme"}}, nil
		},
		fetchTicketsFunc: func(ctx context.Context, start, end time.Time) ([]*psa.Ticket, error) {
			return []*psa.Ticket{{ID: 100, ClientID: 1}, {ID: 101, ClientID: 1}}, nil
		},
		fetchFeedbackFunc: func(ctx context.Context) ([]*psa.Feedback, error) {
			return []*psa.Feedback{{ID: 7, TicketID: 100}}, nil
		},
	}
	ticketRepo := &mockTicketRepo{
		listIDsFunc: func(ctx context.Context) (map[int]struct{}, error) {
			return map[int]struct{}{100: {}, 101: {}}, nil
		},
	}
	syncRepo := &mockSyncRepo{}

	result, err := newFullSync(fetcher, &mockClientRepo{}, ticketRepo, &mockFeedbackRepo{}, syncRepo).
		Execute(context.Background(), FullSyncCommand{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.ClientsSynced)
	assert.Equal(t, 2, result.TicketsSynced)
	assert.Equal(t, 1, result.FeedbackSynced)
	assert.Equal(t, 4, result.Total())
	assert.False(t, result.Failed())

	// One success audit row per step.
	require.Len(t, syncRepo.records, 3)
	for _, record := range syncRepo.records {
		assert.Equal(t, psa.SyncStatusSuccess, record.Status)
	}
}

func TestFullSync_StepFailureDoesNotBlockLaterSteps(t *testing.T) {
	fetcher := &mockFetcher{
		fetchClientsFunc: func(ctx context.Context) ([]*psa.Client, error) {
			return nil, errors.New("halo unavailable")
		},
		fetchTicketsFunc: func(ctx context.Context, start, end time.Time) ([]*psa.Ticket, error) {
			return []*psa.Ticket{{ID: 100, ClientID: 1}}, nil
		},
		fetchFeedbackFunc: func(ctx context.Context) ([]*psa.Feedback, error) {
			return []*psa.Feedback{{ID: 7, TicketID: 100}}, nil
		},
	}
	ticketRepo := &mockTicketRepo{
		listIDsFunc: func(ctx context.Context) (map[int]struct{}, error) {
			return map[int]struct{}{100: {}}, nil
		},
	}
	syncRepo := &mockSyncRepo{}

	result, err := newFullSync(fetcher, &mockClientRepo{}, ticketRepo, &mockFeedbackRepo{}, syncRepo).
		Execute(context.Background(), FullSyncCommand{})
	require.Error(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 0, result.ClientsSynced)
	assert.Equal(t, 1, result.TicketsSynced)
	assert.Equal(t, 1, result.FeedbackSynced)
	require.Len(t, result.StepErrors, 1)

	clientRecords := syncRepo.byType(psa.SyncTypeClients)
	require.Len(t, clientRecords, 1)
	assert.Equal(t, psa.SyncStatusFailed, clientRecords[0].Status)
	require.NotNil(t, clientRecords[0].ErrorMessage)
	assert.Contains(t, *clientRecords[0].ErrorMessage, "halo unavailable")

	assert.Equal(t, psa.SyncStatusSuccess, syncRepo.byType(psa.SyncTypeTickets)[0].Status)
	assert.Equal(t, psa.SyncStatusSuccess, syncRepo.byType(psa.SyncTypeFeedback)[0].Status)
}

func TestScheduledJob_ReportsTotals(t *testing.T) {
	fetcher := &mockFetcher{
		fetchClientsFunc: func(ctx context.Context) ([]*psa.Client, error) {
			return []*psa.Client{{ID: 1}, {ID: 2}}, nil
		},
	}
	job := NewScheduledJob(newFullSync(fetcher, &mockClientRepo{}, &mockTicketRepo{}, &mockFeedbackRepo{}, &mockSyncRepo{}))

	total, err := job.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}
