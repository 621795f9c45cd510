package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SscSPs/community_connect/internal/platform/config"
	"github.com/SscSPs/community_connect/pkg/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the authentication service migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(database.Up)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back all migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(database.Down)
	},
}

func init() {
	migrateCmd.AddCommand(migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(dir database.Direction) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return errors.New("PGSQL_URL is required to run migrations")
	}

	changed, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, dir)
	if err != nil {
		return err
	}
	if !changed {
		slog.Info("No migrations to apply")
		return nil
	}
	slog.Info("Migrations applied successfully")
	return nil
}
