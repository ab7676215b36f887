package main

import (
	"io"
	"log/slog"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/ErlanBelekov/communication-service/internal/credential"
	"github.com/ErlanBelekov/communication-service/internal/infrastructure/postgres"
	"github.com/ErlanBelekov/communication-service/internal/usecase"
)

// NewCreateUserCmd creates the create-user subcommand, used to bootstrap the
// first account before anyone can log in.
func NewCreateUserCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user; the password is read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireDatabaseURL(); err != nil {
				return err
			}

			password, err := readPassword(cmd.InOrStdin())
			if err != nil {
				return err
			}

			pool, err := postgres.NewPool(cmd.Context(), databaseURL)
			if err != nil {
				return oops.Code("DB_CONNECT_FAILED").With("operation", "connect to database").Wrap(err)
			}
			defer pool.Close()

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			users := usecase.NewUserUsecase(postgres.NewUserRepository(pool), credential.NewPBKDF2Hasher(), logger)

			user, err := users.Register(cmd.Context(), email, password)
			if err != nil {
				return oops.Code("CREATE_USER_FAILED").With("email", email).Wrap(err)
			}

			cmd.Printf("Created user %s (%s)\n", user.ID, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address of the new user")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
