package main

import (
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

var databaseURL string

// NewRootCmd creates the root command for commsctl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "commsctl",
		Short:         "Operator tooling for the communication service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"),
		"PostgreSQL connection string (defaults to $DATABASE_URL)")

	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewHashPasswordCmd())
	cmd.AddCommand(NewCreateUserCmd())

	return cmd
}

func requireDatabaseURL() error {
	if databaseURL == "" {
		return oops.Code("CONFIG_INVALID").Errorf("--database-url or DATABASE_URL is required")
	}
	return nil
}
