package usecases

import (
	"context"
	"fmt"
	"time"

	"pulseboard/internal/shared/logger"
)

type FullSyncCommand struct {
	StartDate time.Time
	EndDate   time.Time
	TaskID    *string
}

// FullSyncResult reports each step's outcome. Steps fail independently,
// a failed step never blocks the ones after it.
type FullSyncResult struct {
	ClientsSynced  int
	TicketsSynced  int
	FeedbackSynced int
	StepErrors     []error
}

func (r *FullSyncResult) Total() int {
	return r.ClientsSynced + r.TicketsSynced + r.FeedbackSynced
}

func (r *FullSyncResult) Failed() bool {
	return len(r.StepErrors) > 0
}

// FullSyncUseCase runs the three sync steps in dependency order:
// clients, then tickets, then feedback. Feedback filtering depends on
// the ticket rows the middle step just wrote.
type FullSyncUseCase struct {
	syncClients  *SyncClientsUseCase
	syncTickets  *SyncTicketsUseCase
	syncFeedback *SyncFeedbackUseCase
	logger       logger.Interface
}

func NewFullSyncUseCase(
	syncClients *SyncClientsUseCase,
	syncTickets *SyncTicketsUseCase,
	syncFeedback *SyncFeedbackUseCase,
	logger logger.Interface,
) *FullSyncUseCase {
	return &FullSyncUseCase{
		syncClients:  syncClients,
		syncTickets:  syncTickets,
		syncFeedback: syncFeedback,
		logger:       logger,
	}
}

func (uc *FullSyncUseCase) Execute(ctx context.Context, cmd FullSyncCommand) (*FullSyncResult, error) {
	result := &FullSyncResult{}

	count, err := uc.syncClients.Execute(ctx, SyncClientsCommand{TaskID: cmd.TaskID})
	if err != nil {
		result.StepErrors = append(result.StepErrors, fmt.Errorf("clients step: %w", err))
	} else {
		result.ClientsSynced = count
	}

	count, err = uc.syncTickets.Execute(ctx, SyncTicketsCommand{
		StartDate: cmd.StartDate,
		EndDate:   cmd.EndDate,
		TaskID:    cmd.TaskID,
	})
	if err != nil {
		result.StepErrors = append(result.StepErrors, fmt.Errorf("tickets step: %w", err))
	} else {
		result.TicketsSynced = count
	}

	count, err = uc.syncFeedback.Execute(ctx, SyncFeedbackCommand{TaskID: cmd.TaskID})
	if err != nil {
		result.StepErrors = append(result.StepErrors, fmt.Errorf("feedback step: %w", err))
	} else {
		result.FeedbackSynced = count
	}

	if result.Failed() {
		uc.logger.Warnw("full sync finished with step failures",
			"failed_steps", len(result.StepErrors),
			"records", result.Total(),
		)
		return result, fmt.Errorf("full sync: %d step(s) failed, first: %w", len(result.StepErrors), result.StepErrors[0])
	}

	uc.logger.Infow("full sync completed",
		"clients", result.ClientsSynced,
		"tickets", result.TicketsSynced,
		"feedback", result.FeedbackSynced,
	)
	return result, nil
}

// ScheduledJob adapts the use case to the scheduler's job contract.
type ScheduledJob struct {
	fullSync *FullSyncUseCase
}

func NewScheduledJob(fullSync *FullSyncUseCase) *ScheduledJob {
	return &ScheduledJob{fullSync: fullSync}
}

func (j *ScheduledJob) Execute(ctx context.Context) (int, error) {
	result, err := j.fullSync.Execute(ctx, FullSyncCommand{})
	if result == nil {
		return 0, err
	}
	return result.Total(), err
}
