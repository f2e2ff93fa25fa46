package usecases

import (
	"context"
	"time"

	"pulseboard/internal/domain/psa"
)

// PSAFetcher pulls records from the PSA provider's API.
type PSAFetcher interface {
	FetchClients(ctx context.Context) ([]*psa.Client, error)
	FetchTickets(ctx context.Context, start, end time.Time) ([]*psa.Ticket, error)
	FetchFeedback(ctx context.Context) ([]*psa.Feedback, error)
}
