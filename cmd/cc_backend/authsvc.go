package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	portsrepo "github.com/SscSPs/community_connect/internal/core/ports/repositories"
	"github.com/SscSPs/community_connect/internal/core/services"
	"github.com/SscSPs/community_connect/internal/handlers"
	"github.com/SscSPs/community_connect/internal/metrics"
	"github.com/SscSPs/community_connect/internal/platform/config"
	"github.com/SscSPs/community_connect/internal/repositories/database/pgsql"
	"github.com/SscSPs/community_connect/internal/repositories/memory"
	"github.com/SscSPs/community_connect/pkg/database"
)

var migrateOnStart bool

var authServiceCmd = &cobra.Command{
	Use:   "authsvc",
	Short: "Start the authentication service (/api/login, /api/registrar)",
	RunE:  runAuthService,
}

func init() {
	authServiceCmd.Flags().BoolVar(&migrateOnStart, "migrate", true, "apply pending migrations before serving (PostgreSQL only)")
	rootCmd.AddCommand(authServiceCmd)
}

func runAuthService(cmd *cobra.Command, args []string) error {
	logger := slog.Default()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	var repos portsrepo.RepositoryProvider
	if cfg.DatabaseURL == "" {
		logger.Warn("PGSQL_URL not set; usuarios are kept in memory and lost on restart")
		repos = portsrepo.RepositoryProvider{CredentialRepo: memory.NewCredentialRepository()}
	} else {
		if migrateOnStart {
			changed, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, database.Up)
			if err != nil {
				return err
			}
			logger.Info("Database migrations checked", slog.Bool("applied", changed))
		}

		dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return err
		}
		defer database.ClosePgxPool(dbPool)
		repos = pgsql.NewRepositoryProvider(dbPool)
	}

	m := metrics.New("auth")

	r, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}
	r.Use(m.Middleware())
	if err := handlers.RegisterAuthServiceRoutes(r, cfg, services.NewAuthServiceContainer(repos), m); err != nil {
		return err
	}

	return serveUntilSignal(logger, ":"+cfg.AuthServicePort, r)
}
