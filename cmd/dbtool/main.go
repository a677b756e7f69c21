package main

import (
	"context"
	"fmt"
	"food-rescue-dashboard/internal/adapters/repositories"
	"food-rescue-dashboard/internal/config"
	"food-rescue-dashboard/internal/platform/db"
	"food-rescue-dashboard/internal/platform/logger"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	appLogger, err := logger.New(cfg.Server.AppEnv, cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = appLogger.Sync() }()
	zap.ReplaceGlobals(appLogger)

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "dbtool",
		Short:         "Maintenance commands for the food rescue dashboard database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfg.Database.Driver, "driver", cfg.Database.Driver, "database driver (sqlite or pgx)")
	root.PersistentFlags().StringVar(&cfg.Database.Path, "db-path", cfg.Database.Path, "sqlite database file")
	root.PersistentFlags().StringVar(&cfg.Database.URL, "database-url", cfg.Database.URL, "postgres connection string")

	root.AddCommand(
		newMigrateCmd(cfg),
		newImportCmd(cfg),
		newReconcileCmd(cfg),
	)
	return root
}

func newMigrateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the tables and indexes if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := openDB(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			zap.L().Info("schema ready", zap.String("driver", cfg.Database.Driver))
			return nil
		},
	}
}

// openDB connects and makes sure the schema exists, so every command can run
// against a fresh database.
func openDB(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	if cfg.Driver == "memory" {
		return nil, fmt.Errorf("dbtool needs a persistent driver, got %q", cfg.Driver)
	}

	conn, err := db.Open(ctx, cfg.Driver, cfg.DSN(), db.Options{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}

	if err := repositories.InitSchema(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}
