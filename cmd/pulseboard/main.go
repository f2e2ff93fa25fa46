package main

import (
	"os"

	"github.com/spf13/cobra"

	"pulseboard/internal/interfaces/cli/migrate"
	"pulseboard/internal/interfaces/cli/server"
	"pulseboard/internal/interfaces/cli/sync"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pulseboard",
		Short: "Pulseboard - MSP reporting dashboard",
		Long:  `Pulseboard aggregates PSA tickets, RMM devices, and hosted domains into a multi-tenant reporting dashboard.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		sync.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
