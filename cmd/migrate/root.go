package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/notes-api/internal/adapter/postgres"
	"github.com/heartmarshall/notes-api/internal/app"
	"github.com/heartmarshall/notes-api/internal/config"
	"github.com/heartmarshall/notes-api/migrations"
)

var (
	configPath string
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Apply and inspect notes database migrations",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $CONFIG_PATH or ./config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall deadline for the command")
}

// withMigrator loads config, opens a Migrator and hands it to fn.
func withMigrator(cmd *cobra.Command, fn func(ctx context.Context, m *postgres.Migrator, log *slog.Logger) error) error {
	load := config.Load
	if configPath != "" {
		load = func() (*config.Config, error) { return config.LoadFrom(configPath) }
	}
	cfg, err := load()
	if err != nil {
		return err
	}

	logger, logCloser := app.NewLogger(cfg.Log)
	defer logCloser.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	m, err := postgres.NewMigrator(ctx, cfg.Database.DSN, migrations.FS)
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer m.Close() //nolint:errcheck

	return fn(ctx, m, logger)
}
