package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/orris-inc/subkeeper/internal/interfaces/cli/admin"
	"github.com/orris-inc/subkeeper/internal/interfaces/cli/migrate"
	"github.com/orris-inc/subkeeper/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "subkeeper",
		Short:        "Subkeeper - subscription lifecycle service",
		Long:         `Subkeeper manages plans, user subscriptions and their change history behind a JSON HTTP API.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
