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

type MonthWindow struct {
	Label string
	Start time.Time
	End   time.Time
}

type MonthlyStat struct {
	Label         string `json:"label"`
	OpenedTickets int    `json:"openedTickets"`
	ClosedTickets int    `json:"closedTickets"`
	TotalTickets  int    `json:"totalTickets"`
}

type GetMonthlyStatsCommand struct {
	// ClientID narrows the buckets to one client when set.
	ClientID     *int
	Windows      []MonthWindow
	Restrictions *tenant.RestrictionSet
}

// GetMonthlyStatsUseCase buckets tickets into caller-supplied windows.
// Output order matches input order exactly; callers rely on it for
// chart axes.
type GetMonthlyStatsUseCase struct {
	ticketRepo psa.TicketRepository
	logger     logger.Interface
}

func NewGetMonthlyStatsUseCase(ticketRepo psa.TicketRepository, logger logger.Interface) *GetMonthlyStatsUseCase {
	return &GetMonthlyStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetMonthlyStatsUseCase) Execute(ctx context.Context, cmd GetMonthlyStatsCommand) ([]MonthlyStat, error) {
	stats := make([]MonthlyStat, len(cmd.Windows))
	for i, window := range cmd.Windows {
		stats[i].Label = window.Label
	}
	if len(cmd.Windows) == 0 || cmd.Restrictions.Empty() {
		return stats, nil
	}
	if cmd.ClientID != nil && !cmd.Restrictions.AllowsPSAClient(*cmd.ClientID) {
		return nil, errors.NewForbiddenError("client not accessible to current company")
	}

	// One query spanning all windows, bucketed in memory.
	span := cmd.Windows[0]
	earliest, latest := span.Start, span.End
	for _, window := range cmd.Windows[1:] {
		if window.Start.Before(earliest) {
			earliest = window.Start
		}
		if window.End.After(latest) {
			latest = window.End
		}
	}

	tickets, err := uc.ticketRepo.List(ctx, psa.TicketFilter{
		ClientID:  cmd.ClientID,
		ClientIDs: restrictionClientIDs(cmd.Restrictions),
		StartDate: &earliest,
		EndDate:   &latest,
	})
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	for _, ticket := range tickets {
		for i, window := range cmd.Windows {
			if inWindow(ticket.DateOccurred, window) {
				stats[i].OpenedTickets++
				stats[i].TotalTickets++
			}
			if ticket.DateClosed != nil && inWindow(*ticket.DateClosed, window) {
				stats[i].ClosedTickets++
			}
		}
	}
	return stats, nil
}

func inWindow(t time.Time, w MonthWindow) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
