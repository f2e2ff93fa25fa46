package usecases

import (
	"context"
	"fmt"

	"pulseboard/internal/domain/psa"
	"pulseboard/internal/shared/logger"
)

type SyncFeedbackCommand struct {
	TaskID *string
}

type SyncFeedbackUseCase struct {
	fetcher      PSAFetcher
	feedbackRepo psa.FeedbackRepository
	ticketRepo   psa.TicketRepository
	syncRepo     psa.SyncRecordRepository
	logger       logger.Interface
}

func NewSyncFeedbackUseCase(
	fetcher PSAFetcher,
	feedbackRepo psa.FeedbackRepository,
	ticketRepo psa.TicketRepository,
	syncRepo psa.SyncRecordRepository,
	logger logger.Interface,
) *SyncFeedbackUseCase {
	return &SyncFeedbackUseCase{
		fetcher:      fetcher,
		feedbackRepo: feedbackRepo,
		ticketRepo:   ticketRepo,
		syncRepo:     syncRepo,
		logger:       logger,
	}
}

// Execute pulls feedback and upserts only rows whose ticket exists
// locally. Feedback for tickets outside the sync window is dropped, so
// feedback must run after tickets in a full pass.
func (uc *SyncFeedbackUseCase) Execute(ctx context.Context, cmd SyncFeedbackCommand) (int, error) {
	feedback, err := uc.fetcher.FetchFeedback(ctx)
	if err != nil {
		uc.recordFailure(ctx, err, cmd.TaskID)
		uc.logger.Errorw("failed to fetch feedback", "error", err)
		return 0, fmt.Errorf("failed to fetch feedback: %w", err)
	}

	knownTickets, err := uc.ticketRepo.ListIDs(ctx)
	if err != nil {
		uc.recordFailure(ctx, err, cmd.TaskID)
		uc.logger.Errorw("failed to list local ticket ids", "error", err)
		return 0, fmt.Errorf("failed to list local ticket ids: %w", err)
	}

	kept := make([]*psa.Feedback, 0, len(feedback))
	for _, fb := range feedback {
		if _, ok := knownTickets[fb.TicketID]; ok {
			kept = append(kept, fb)
		}
	}
	if dropped := len(feedback) - len(kept); dropped > 0 {
		uc.logger.Infow("dropped feedback for unknown tickets", "dropped", dropped, "kept", len(kept))
	}

	if err := uc.feedbackRepo.UpsertBatch(ctx, kept); err != nil {
		uc.recordFailure(ctx, err, cmd.TaskID)
		uc.logger.Errorw("failed to upsert feedback", "error", err, "count", len(kept))
		return 0, fmt.Errorf("failed to upsert feedback: %w", err)
	}

	if err := uc.syncRepo.Append(ctx, psa.NewSyncSuccess(psa.SyncTypeFeedback, len(kept), cmd.TaskID)); err != nil {
		uc.logger.Warnw("failed to append sync record", "error", err, "sync_type", psa.SyncTypeFeedback)
	}

	uc.logger.Infow("feedback sync completed", "count", len(kept))
	return len(kept), nil
}

func (uc *SyncFeedbackUseCase) recordFailure(ctx context.Context, cause error, taskID *string) {
	if err := uc.syncRepo.Append(ctx, psa.NewSyncFailure(psa.SyncTypeFeedback, cause, taskID)); err != nil {
		uc.logger.Warnw("failed to append sync failure record", "error", err, "sync_type", psa.SyncTypeFeedback)
	}
}
