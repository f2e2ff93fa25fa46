package usecases

import (
	"context"
	"fmt"

	"pulseboard/internal/domain/psa"
	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/shared/logger"
)

type ListClientsCommand struct {
	Restrictions *tenant.RestrictionSet
}

// ListClientsUseCase returns the PSA clients visible to the caller.
type ListClientsUseCase struct {
	clientRepo psa.ClientRepository
	logger     logger.Interface
}

func NewListClientsUseCase(clientRepo psa.ClientRepository, logger logger.Interface) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, cmd ListClientsCommand) ([]*psa.Client, error) {
	if cmd.Restrictions.Empty() {
		return []*psa.Client{}, nil
	}

	clients, err := uc.clientRepo.List(ctx, restrictionClientIDs(cmd.Restrictions))
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		clients = []*psa.Client{}
	}
	return clients, nil
}
