package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	syncUsecases "pulseboard/internal/application/sync/usecases"
	"pulseboard/internal/infrastructure/config"
	"pulseboard/internal/infrastructure/database"
	"pulseboard/internal/infrastructure/repository"
	"pulseboard/internal/infrastructure/upstream/halo"
	"pulseboard/internal/shared/biztime"
	"pulseboard/internal/shared/logger"
)

var (
	env        string
	monthsBack int
)

// NewCommand builds the one-off sync command. It runs a full sync in
// the foreground and exits, for cron-less deployments and manual
// backfills.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run a full data sync and exit",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().IntVar(&monthsBack, "months", 0, "Ticket lookback in months (0 uses the configured default)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()
	log := logger.NewLogger().With("component", "cli.sync")

	clientRepo := repository.NewClientRepository(db, log)
	ticketRepo := repository.NewTicketRepository(db, log)
	feedbackRepo := repository.NewFeedbackRepository(db, log)
	syncRepo := repository.NewSyncRecordRepository(db, log)

	haloClient := halo.NewClient(cfg.Upstream.Halo, log)

	fullSync := syncUsecases.NewFullSyncUseCase(
		syncUsecases.NewSyncClientsUseCase(haloClient, clientRepo, syncRepo, log),
		syncUsecases.NewSyncTicketsUseCase(
			haloClient, ticketRepo, clientRepo, syncRepo,
			cfg.Sync.DefaultLookbackMonths, cfg.Sync.BatchSize, log),
		syncUsecases.NewSyncFeedbackUseCase(haloClient, feedbackRepo, ticketRepo, syncRepo, log),
		log,
	)

	var start, end time.Time
	if monthsBack > 0 {
		end = biztime.NowUTC()
		start = end.AddDate(0, -monthsBack, 0)
	}

	started := time.Now()
	result, err := fullSync.Execute(context.Background(), syncUsecases.FullSyncCommand{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	fmt.Printf("sync completed in %s: %d clients, %d tickets, %d feedback\n",
		time.Since(started).Round(time.Millisecond),
		result.ClientsSynced, result.TicketsSynced, result.FeedbackSynced)
	return nil
}
