package main

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/ErlanBelekov/communication-service/internal/infrastructure/postgres"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireDatabaseURL(); err != nil {
				return err
			}

			applied, err := postgres.Migrate(cmd.Context(), databaseURL)
			if err != nil {
				return oops.Code("MIGRATION_FAILED").With("operation", "run migrations").Wrap(err)
			}

			cmd.Printf("Applied %d migration(s)\n", applied)
			return nil
		},
	}
}
