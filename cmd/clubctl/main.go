// Command clubctl provisions administrators and sample content for the club
// backend.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"oysterkode.backend/internal/config"
	"oysterkode.backend/internal/infrastructure/storage"
	"oysterkode.backend/pkg/logger"
)

type cliDeps struct {
	loadEnv   func(...string) error
	loadDB    func() (*config.DatabaseConfig, error)
	openStore func(ctx context.Context, cfg config.DatabaseConfig) (*storage.Store, error)
	getenv    func(string) string
	out       io.Writer
}

func defaultDeps() cliDeps {
	return cliDeps{
		loadEnv:   godotenv.Load,
		loadDB:    config.LoadDatabase,
		openStore: storage.Open,
		getenv:    os.Getenv,
		out:       os.Stdout,
	}
}

func main() {
	if err := newRootCmd(defaultDeps()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(d cliDeps) *cobra.Command {
	root := &cobra.Command{
		Use:   "clubctl",
		Short: "Operator tooling for the club website backend",
		Long: `clubctl manages the club backend's data store directly.

It reads the same DB_DRIVER, MONGODB_URI, MONGODB_DATABASE and DATABASE_DSN
variables as the server (a .env file in the working directory is honoured).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = d.loadEnv()
			logger.Init("development")
		},
	}
	root.SetOut(d.out)

	root.AddCommand(newCreateAdminCmd(d))
	root.AddCommand(newHashPasswordCmd(d))
	root.AddCommand(newSeedCmd(d))
	return root
}

// withStore opens the configured store for the duration of fn.
func withStore(ctx context.Context, d cliDeps, fn func(*storage.Store) error) error {
	dbCfg, err := d.loadDB()
	if err != nil {
		return err
	}
	store, err := d.openStore(ctx, *dbCfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", dbCfg.Driver, err)
	}
	defer store.Close(context.Background())
	return fn(store)
}
