package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"oysterkode.backend/internal/infrastructure/storage"
	"oysterkode.backend/internal/usecases"
)

func newSeedCmd(d cliDeps) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample members, projects and events",
		Long: `Insert sample members, projects and events for local development.

With --reset the three collections are emptied first. Administrators and
contact submissions are never touched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), d, func(s *storage.Store) error {
				res, err := usecases.NewSeedUsecase(s.Events, s.Members, s.Projects).Seed(cmd.Context(), reset)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d members, %d projects, %d events.\n", res.Members, res.Projects, res.Events)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "delete existing members, projects and events first")
	return cmd
}
