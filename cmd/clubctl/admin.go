package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"oysterkode.backend/internal/infrastructure/storage"
	"oysterkode.backend/internal/usecases"
	"oysterkode.backend/pkg/crypto"
)

func newCreateAdminCmd(d cliDeps) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the first administrator account",
		Long: `Create the first administrator account.

Nothing is written when an administrator already exists. Credentials come from
--username/--password or ADMIN_USERNAME/ADMIN_PASSWORD.

Examples:
  clubctl create-admin --username admin --password 's3cret-pass'
  ADMIN_USERNAME=admin ADMIN_PASSWORD=... clubctl create-admin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				username = d.getenv("ADMIN_USERNAME")
			}
			if password == "" {
				password = d.getenv("ADMIN_PASSWORD")
			}
			if username == "" || password == "" {
				return fmt.Errorf("username and password are required (flags or ADMIN_USERNAME/ADMIN_PASSWORD)")
			}

			return withStore(cmd.Context(), d, func(s *storage.Store) error {
				created, err := usecases.NewAuthUsecase(s.Admins, nil, nil).EnsureAdminExists(cmd.Context(), username, password)
				if err != nil {
					return err
				}
				if !created {
					fmt.Fprintln(cmd.OutOrStdout(), "An administrator already exists; nothing to do.")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Administrator %q created.\n", username)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "administrator username")
	cmd.Flags().StringVar(&password, "password", "", "administrator password (min 8 characters)")
	return cmd
}

func newHashPasswordCmd(_ cliDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := crypto.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
