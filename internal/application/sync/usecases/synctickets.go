package usecases

import (
	"context"
	"fmt"
	"time"

	"pulseboard/internal/domain/psa"
	"pulseboard/internal/shared/biztime"
	"pulseboard/internal/shared/logger"
)

const defaultBatchSize = 1000

type SyncTicketsCommand struct {
	// StartDate bounds the fetch window. Zero means the configured
	// lookback from now.
	StartDate time.Time
	EndDate   time.Time
	TaskID    *string
}

type SyncTicketsUseCase struct {
	fetcher        PSAFetcher
	ticketRepo     psa.TicketRepository
	clientRepo     psa.ClientRepository
	syncRepo       psa.SyncRecordRepository
	lookbackMonths int
	batchSize      int
	logger         logger.Interface
}

func NewSyncTicketsUseCase(
	fetcher PSAFetcher,
	ticketRepo psa.TicketRepository,
	clientRepo psa.ClientRepository,
	syncRepo psa.SyncRecordRepository,
	lookbackMonths int,
	batchSize int,
	logger logger.Interface,
) *SyncTicketsUseCase {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &SyncTicketsUseCase{
		fetcher:        fetcher,
		ticketRepo:     ticketRepo,
		clientRepo:     clientRepo,
		syncRepo:       syncRepo,
		lookbackMonths: lookbackMonths,
		batchSize:      batchSize,
		logger:         logger,
	}
}

// Execute pulls tickets in the window and upserts them in batches.
// After a successful upsert the per-client last ticket dates are
// refreshed; that refresh is best effort and never fails the sync.
func (uc *SyncTicketsUseCase) Execute(ctx context.Context, cmd SyncTicketsCommand) (int, error) {
	start, end := uc.window(cmd)

	tickets, err := uc.fetcher.FetchTickets(ctx, start, end)
	if err != nil {
		uc.recordFailure(ctx, err, cmd.TaskID)
		uc.logger.Errorw("failed to fetch tickets", "error", err, "start", start, "end", end)
		return 0, fmt.Errorf("failed to fetch tickets: %w", err)
	}

	for offset := 0; offset < len(tickets); offset += uc.batchSize {
		limit := offset + uc.batchSize
		if limit > len(tickets) {
			limit = len(tickets)
		}
		if err := uc.ticketRepo.UpsertBatch(ctx, tickets[offset:limit]); err != nil {
			uc.recordFailure(ctx, err, cmd.TaskID)
			uc.logger.Errorw("failed to upsert ticket batch", "error", err, "offset", offset)
			return 0, fmt.Errorf("failed to upsert tickets: %w", err)
		}
	}

	if err := uc.clientRepo.RecomputeLastTicketDates(ctx); err != nil {
		uc.logger.Warnw("failed to recompute last ticket dates", "error", err)
	}

	if err := uc.syncRepo.Append(ctx, psa.NewSyncSuccess(psa.SyncTypeTickets, len(tickets), cmd.TaskID)); err != nil {
		uc.logger.Warnw("failed to append sync record", "error", err, "sync_type", psa.SyncTypeTickets)
	}

	uc.logger.Infow("ticket sync completed", "count", len(tickets), "start", start, "end", end)
	return len(tickets), nil
}

func (uc *SyncTicketsUseCase) window(cmd SyncTicketsCommand) (time.Time, time.Time) {
	start, end := cmd.StartDate, cmd.EndDate
	if end.IsZero() {
		end = biztime.NowUTC()
	}
	if start.IsZero() {
		start = end.AddDate(0, -uc.lookbackMonths, 0)
	}
	return start, end
}

func (uc *SyncTicketsUseCase) recordFailure(ctx context.Context, cause error, taskID *string) {
	if err := uc.syncRepo.Append(ctx, psa.NewSyncFailure(psa.SyncTypeTickets, cause, taskID)); err != nil {
		uc.logger.Warnw("failed to append sync failure record", "error", err, "sync_type", psa.SyncTypeTickets)
	}
}
