package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/SscSPs/community_connect/internal/adapters/authclient"
	"github.com/SscSPs/community_connect/internal/core/services"
	"github.com/SscSPs/community_connect/internal/core/store"
	"github.com/SscSPs/community_connect/internal/fixtures"
	"github.com/SscSPs/community_connect/internal/handlers"
	"github.com/SscSPs/community_connect/internal/metrics"
	"github.com/SscSPs/community_connect/internal/platform/config"
	"github.com/SscSPs/community_connect/internal/utils"
)

var seedFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the app server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&seedFile, "seed", "", "YAML seed file (default: embedded fixtures)")
	rootCmd.AddCommand(serveCmd)
}

func loadSeed() (fixtures.Data, error) {
	if seedFile == "" {
		return fixtures.Default()
	}
	raw, err := os.ReadFile(seedFile)
	if err != nil {
		return fixtures.Data{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	return fixtures.Parse(raw)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.Default()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	seed, err := loadSeed()
	if err != nil {
		return err
	}
	st := store.New(seed, store.WithLogger(logger))

	m := metrics.New("app")
	unsubscribe := m.ObserveStore(st)
	defer unsubscribe()

	posthogClient := utils.InitializePosthogClient(cfg.PostHogAPIKey, logger)
	defer posthogClient.Close()

	client := authclient.New(cfg.AuthServiceURL, cfg.AuthServiceTimeout)
	container := services.NewServiceContainer(st, client,
		services.WithAuthRecorder(m),
		services.WithSessionIDs(uuid.NewString),
		services.WithSessionTTL(cfg.JWTExpiryDuration),
	)

	r, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}
	handlers.RegisterRoutes(r, cfg, container, m, posthogClient)

	logger.Info("App server configured", slog.String("auth_service", cfg.AuthServiceURL))
	return serveUntilSignal(logger, ":"+cfg.Port, r)
}
