package usecases

import (
	"context"
	"fmt"
	"sort"

	"pulseboard/internal/domain/psa"
	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/shared/biztime"
	"pulseboard/internal/shared/logger"
)

const (
	trendDays     = 365
	topClientsMax = 10
)

type TrendPoint struct {
	Date   string `json:"date"`
	Opened int    `json:"opened"`
	Closed int    `json:"closed"`
}

type TopClient struct {
	ClientID    int    `json:"clientId"`
	Name        string `json:"name"`
	TicketCount int    `json:"ticketCount"`
}

type SatisfactionStats struct {
	Satisfied    int     `json:"satisfied"`
	Dissatisfied int     `json:"dissatisfied"`
	TotalScored  int     `json:"totalScored"`
	Percentage   float64 `json:"percentage"`
}

type DashboardStats struct {
	TotalTickets  int               `json:"totalTickets"`
	OpenTickets   int               `json:"openTickets"`
	ClosedTickets int               `json:"closedTickets"`
	Trend         []TrendPoint      `json:"trend"`
	TopClients    []TopClient       `json:"topClients"`
	Satisfaction  SatisfactionStats `json:"satisfaction"`
}

type GetDashboardStatsCommand struct {
	Restrictions *tenant.RestrictionSet
}

// GetDashboardStatsUseCase aggregates the landing-page numbers from the
// locally synced ticket store: open/closed partition, a daily trend over
// the last year, the ten busiest clients, and overall satisfaction.
type GetDashboardStatsUseCase struct {
	ticketRepo   psa.TicketRepository
	clientRepo   psa.ClientRepository
	feedbackRepo psa.FeedbackRepository
	logger       logger.Interface
}

func NewGetDashboardStatsUseCase(
	ticketRepo psa.TicketRepository,
	clientRepo psa.ClientRepository,
	feedbackRepo psa.FeedbackRepository,
	logger logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		ticketRepo:   ticketRepo,
		clientRepo:   clientRepo,
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context, cmd GetDashboardStatsCommand) (*DashboardStats, error) {
	stats := &DashboardStats{Trend: []TrendPoint{}, TopClients: []TopClient{}}

	// A restricted context with no mappings sees empty data, not an
	// error and never unfiltered data.
	if cmd.Restrictions.Empty() {
		return stats, nil
	}
	clientIDs := restrictionClientIDs(cmd.Restrictions)

	tickets, err := uc.ticketRepo.List(ctx, psa.TicketFilter{ClientIDs: clientIDs})
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	stats.TotalTickets = len(tickets)
	for _, ticket := range tickets {
		if ticket.IsClosed {
			stats.ClosedTickets++
		} else {
			stats.OpenTickets++
		}
	}

	stats.Trend = uc.buildTrend(tickets)
	stats.TopClients = uc.buildTopClients(ctx, tickets)
	stats.Satisfaction = uc.buildSatisfaction(ctx, clientIDs)

	return stats, nil
}

// buildTrend buckets ticket activity per UTC day over the trailing year.
// Days with no activity are present with zero counts so charts render a
// continuous axis.
func (uc *GetDashboardStatsUseCase) buildTrend(tickets []*psa.Ticket) []TrendPoint {
	cutoff := biztime.StartOfDayUTC(biztime.NowUTC().AddDate(0, 0, -(trendDays - 1)))

	opened := make(map[string]int)
	closed := make(map[string]int)
	for _, ticket := range tickets {
		if !ticket.DateOccurred.Before(cutoff) {
			opened[biztime.DayKey(ticket.DateOccurred)]++
		}
		if ticket.DateClosed != nil && !ticket.DateClosed.Before(cutoff) {
			closed[biztime.DayKey(*ticket.DateClosed)]++
		}
	}

	trend := make([]TrendPoint, 0, trendDays)
	for day := 0; day < trendDays; day++ {
		key := biztime.DayKey(cutoff.AddDate(0, 0, day))
		trend = append(trend, TrendPoint{
			Date:   key,
			Opened: opened[key],
			Closed: closed[key],
		})
	}
	return trend
}

func (uc *GetDashboardStatsUseCase) buildTopClients(ctx context.Context, tickets []*psa.Ticket) []TopClient {
	counts := make(map[int]int)
	for _, ticket := range tickets {
		counts[ticket.ClientID]++
	}

	ranked := make([]TopClient, 0, len(counts))
	for clientID, count := range counts {
		ranked = append(ranked, TopClient{ClientID: clientID, TicketCount: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TicketCount != ranked[j].TicketCount {
			return ranked[i].TicketCount > ranked[j].TicketCount
		}
		return ranked[i].ClientID < ranked[j].ClientID
	})
	if len(ranked) > topClientsMax {
		ranked = ranked[:topClientsMax]
	}

	ids := make([]int, 0, len(ranked))
	for _, tc := range ranked {
		ids = append(ids, tc.ClientID)
	}
	names, err := uc.clientRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to resolve client names", "error", err)
		names = nil
	}
	for i := range ranked {
		if client, ok := names[ranked[i].ClientID]; ok && client.Name != "" {
			ranked[i].Name = client.Name
		} else {
			ranked[i].Name = fmt.Sprintf("Client %d", ranked[i].ClientID)
		}
	}
	return ranked
}

// buildSatisfaction degrades to zeros when feedback cannot be read; the
// rest of the dashboard still renders.
func (uc *GetDashboardStatsUseCase) buildSatisfaction(ctx context.Context, clientIDs []int) SatisfactionStats {
	feedback, err := uc.feedbackRepo.List(ctx, psa.FeedbackFilter{ClientIDs: clientIDs})
	if err != nil {
		uc.logger.Warnw("failed to list feedback, degrading satisfaction to zeros", "error", err)
		return SatisfactionStats{}
	}
	return ComputeSatisfaction(feedback)
}

// ComputeSatisfaction counts every row carrying a score; the percentage
// is satisfied over all scored responses, so scores outside the
// satisfied/dissatisfied pair still weigh the denominator down.
func ComputeSatisfaction(feedback []*psa.Feedback) SatisfactionStats {
	stats := SatisfactionStats{}
	for _, fb := range feedback {
		switch {
		case fb.IsSatisfied():
			stats.Satisfied++
			stats.TotalScored++
		case fb.IsDissatisfied():
			stats.Dissatisfied++
			stats.TotalScored++
		case fb.HasScore():
			stats.TotalScored++
		}
	}
	if stats.TotalScored > 0 {
		stats.Percentage = float64(stats.Satisfied) / float64(stats.TotalScored) * 100
	}
	return stats
}

// restrictionClientIDs translates a restriction set into the repository
// filter convention: nil means unrestricted, empty non-nil means none.
func restrictionClientIDs(set *tenant.RestrictionSet) []int {
	if set.Unrestricted {
		return nil
	}
	if set.PSAClientIDs == nil {
		return []int{}
	}
	return set.PSAClientIDs
}
