package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/internal/domain/psa"
	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/shared/errors"
)

func TestTicketStats_ClientOutsideRestrictionForbidden(t *testing.T) {
	uc := NewGetTicketStatsUseCase(&mockTicketRepo{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), GetTicketStatsCommand{
		ClientID:     99,
		Restrictions: &tenant.RestrictionSet{PSAClientIDs: []int{11, 12}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestTicketStats_AllowedClientCounts(t *testing.T) {
	now := time.Now().UTC()
	uc := NewGetTicketStatsUseCase(
		&mockTicketRepo{
			listFunc: func(ctx context.Context, filter psa.TicketFilter) ([]*psa.Ticket, error) {
				require.NotNil(t, filter.ClientID)
				assert.Equal(t, 11, *filter.ClientID)
				return []*psa.Ticket{
					{ID: 1, ClientID: 11, DateOccurred: now, IsClosed: true},
					{ID: 2, ClientID: 11, DateOccurred: now, IsClosed: false},
				}, nil
			},
		},
		&mockLogger{},
	)

	stats, err := uc.Execute(context.Background(), GetTicketStatsCommand{
		ClientID:     11,
		Restrictions: &tenant.RestrictionSet{PSAClientIDs: []int{11}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalTickets)
	assert.Equal(t, 1, stats.OpenTickets)
	assert.Equal(t, 1, stats.ClosedTickets)
	require.Len(t, stats.Tickets, 2)
	assert.Equal(t, 1, stats.Tickets[0].ID)
	assert.True(t, stats.Tickets[0].IsClosed)
}

func TestTicketStats_SuperAdminSeesAnyClient(t *testing.T) {
	uc := NewGetTicketStatsUseCase(
		&mockTicketRepo{
			listFunc: func(ctx context.Context, filter psa.TicketFilter) ([]*psa.Ticket, error) {
				return nil, nil
			},
		},
		&mockLogger{},
	)

	_, err := uc.Execute(context.Background(), GetTicketStatsCommand{
		ClientID:     12345,
		Restrictions: &tenant.RestrictionSet{Unrestricted: true},
	})
	require.NoError(t, err)
}

func TestMonthlyStats_OrderPreserved(t *testing.T) {
	jan := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	closedFeb := feb.Add(24 * time.Hour)
	tickets := []*psa.Ticket{
		{ID: 1, ClientID: 1, DateOccurred: jan.Add(time.Hour)},
		{ID: 2, ClientID: 1, DateOccurred: jan.Add(2 * time.Hour), DateClosed: &closedFeb, IsClosed: true},
		{ID: 3, ClientID: 1, DateOccurred: feb.Add(time.Hour)},
	}
	uc := NewGetMonthlyStatsUseCase(
		&mockTicketRepo{
			listFunc: func(ctx context.Context, filter psa.TicketFilter) ([]*psa.Ticket, error) {
				require.NotNil(t, filter.StartDate)
				require.NotNil(t, filter.EndDate)
				assert.Equal(t, jan, *filter.StartDate)
				assert.Equal(t, mar, *filter.EndDate)
				return tickets, nil
			},
		},
		&mockLogger{},
	)

	// Windows intentionally supplied newest-first.
	windows := []MonthWindow{
		{Label: "2026-02", Start: feb, End: mar},
		{Label: "2026-01", Start: jan, End: feb},
	}
	stats, err := uc.Execute(context.Background(), GetMonthlyStatsCommand{
		Windows:      windows,
		Restrictions: &tenant.RestrictionSet{Unrestricted: true},
	})
	require.NoError(t, err)

	require.Len(t, stats, 2)
	assert.Equal(t, "2026-02", stats[0].Label)
	assert.Equal(t, 1, stats[0].OpenedTickets)
	assert.Equal(t, 1, stats[0].ClosedTickets)
	assert.Equal(t, "2026-01", stats[1].Label)
	assert.Equal(t, 2, stats[1].OpenedTickets)
	assert.Equal(t, 0, stats[1].ClosedTickets)
}

func TestMonthlyStats_ClientOutsideRestrictionForbidden(t *testing.T) {
	clientID := 7
	uc := NewGetMonthlyStatsUseCase(&mockTicketRepo{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), GetMonthlyStatsCommand{
		ClientID: &clientID,
		Windows: []MonthWindow{
			{Label: "2026-01", Start: time.Now().AddDate(0, -1, 0), End: time.Now()},
		},
		Restrictions: &tenant.RestrictionSet{PSAClientIDs: []int{5, 9}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestMonthlyStats_EmptyRestrictionReturnsZeroedWindows(t *testing.T) {
	uc := NewGetMonthlyStatsUseCase(&mockTicketRepo{}, &mockLogger{})

	stats, err := uc.Execute(context.Background(), GetMonthlyStatsCommand{
		Windows: []MonthWindow{
			{Label: "2026-01", Start: time.Now().AddDate(0, -1, 0), End: time.Now()},
		},
		Restrictions: &tenant.RestrictionSet{PSAClientIDs: []int{}},
	})
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "2026-01", stats[0].Label)
	assert.Zero(t, stats[0].TotalTickets)
}

func TestListClients_EmptyRestrictionShortCircuits(t *testing.T) {
	called := false
	uc := NewListClientsUseCase(
		&mockClientRepo{
			listFunc: func(ctx context.Context, ids []int) ([]*psa.Client, error) {
				called = true
				return nil, nil
			},
		},
		&mockLogger{},
	)

	clients, err := uc.Execute(context.Background(), ListClientsCommand{
		Restrictions: &tenant.RestrictionSet{PSAClientIDs: []int{}},
	})
	require.NoError(t, err)
	assert.False(t, called)
	assert.Empty(t, clients)
	assert.NotNil(t, clients)
}
