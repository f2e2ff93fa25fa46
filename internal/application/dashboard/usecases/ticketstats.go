package usecases

import (
	"context"
	"fmt"
	"time"

	"pulseboard/internal/domain/psa"
	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
)

type TicketStats struct {
	ClientID      int          `json:"clientId"`
	TotalTickets  int          `json:"totalTickets"`
	OpenTickets   int          `json:"openTickets"`
	ClosedTickets int          `json:"closedTickets"`
	Tickets       []TicketView `json:"tickets"`
}

type TicketView struct {
	ID           int        `json:"id"`
	StatusName   string     `json:"statusName"`
	DateOccurred time.Time  `json:"dateOccurred"`
	DateClosed   *time.Time `json:"dateClosed,omitempty"`
	IsClosed     bool       `json:"isClosed"`
}

type GetTicketStatsCommand struct {
	ClientID     int
	StartDate    *time.Time
	EndDate      *time.Time
	Restrictions *tenant.RestrictionSet
}

// GetTicketStatsUseCase counts a single client's tickets in a window.
// Asking about a client outside the caller's restriction set is an
// authorization failure, not an empty result.
type GetTicketStatsUseCase struct {
	ticketRepo psa.TicketRepository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(ticketRepo psa.TicketRepository, logger logger.Interface) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context, cmd GetTicketStatsCommand) (*TicketStats, error) {
	if !cmd.Restrictions.AllowsPSAClient(cmd.ClientID) {
		return nil, errors.NewForbiddenError("client not accessible to current company")
	}

	tickets, err := uc.ticketRepo.List(ctx, psa.TicketFilter{
		ClientID:  &cmd.ClientID,
		StartDate: cmd.StartDate,
		EndDate:   cmd.EndDate,
	})
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "client_id", cmd.ClientID)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	stats := &TicketStats{
		ClientID:     cmd.ClientID,
		TotalTickets: len(tickets),
		Tickets:      make([]TicketView, 0, len(tickets)),
	}
	for _, ticket := range tickets {
		if ticket.IsClosed {
			stats.ClosedTickets++
		} else {
			stats.OpenTickets++
		}
		stats.Tickets = append(stats.Tickets, TicketView{
			ID:           ticket.ID,
			StatusName:   ticket.StatusName,
			DateOccurred: ticket.DateOccurred,
			DateClosed:   ticket.DateClosed,
			IsClosed:     ticket.IsClosed,
		})
	}
	return stats, nil
}
