package usecases

import (
	"context"
	"fmt"

	"pulseboard/internal/domain/psa"
	"pulseboard/internal/shared/logger"
)

type SyncClientsCommand struct {
	TaskID *string
}

type SyncClientsUseCase struct {
	fetcher    PSAFetcher
	clientRepo psa.ClientRepository
	syncRepo   psa.SyncRecordRepository
	logger     logger.Interface
}

func NewSyncClientsUseCase(
	fetcher PSAFetcher,
	clientRepo psa.ClientRepository,
	syncRepo psa.SyncRecordRepository,
	logger logger.Interface,
) *SyncClientsUseCase {
	return &SyncClientsUseCase{
		fetcher:    fetcher,
		clientRepo: clientRepo,
		syncRepo:   syncRepo,
		logger:     logger,
	}
}

// Execute pulls the full client list and upserts it. Every attempt
// leaves an audit row, failed attempts included.
func (uc *SyncClientsUseCase) Execute(ctx context.Context, cmd SyncClientsCommand) (int, error) {
	clients, err := uc.fetcher.FetchClients(ctx)
	if err != nil {
		uc.recordFailure(ctx, err, cmd.TaskID)
		uc.logger.Errorw("failed to fetch clients", "error", err)
		return 0, fmt.Errorf("failed to fetch clients: %w", err)
	}

	if err := uc.clientRepo.UpsertBatch(ctx, clients); err != nil {
		uc.recordFailure(ctx, err, cmd.TaskID)
		uc.logger.Errorw("failed to upsert clients", "error", err, "count", len(clients))
		return 0, fmt.Errorf("failed to upsert clients: %w", err)
	}

	if err := uc.syncRepo.Append(ctx, psa.NewSyncSuccess(psa.SyncTypeClients, len(clients), cmd.TaskID)); err != nil {
		uc.logger.Warnw("failed to append sync record", "error", err, "sync_type", psa.SyncTypeClients)
	}

	uc.logger.Infow("client sync completed", "count", len(clients))
	return len(clients), nil
}

func (uc *SyncClientsUseCase) recordFailure(ctx context.Context, cause error, taskID *string) {
	if err := uc.syncRepo.Append(ctx, psa.NewSyncFailure(psa.SyncTypeClients, cause, taskID)); err != nil {
		uc.logger.Warnw("failed to append sync failure record", "error", err, "sync_type", psa.SyncTypeClients)
	}
}
