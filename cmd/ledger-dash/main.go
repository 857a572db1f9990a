package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"ledger/internal/config"
	"ledger/internal/dash"
	"ledger/internal/log"
	"ledger/internal/schedule"
	"ledger/internal/snapshot"
)

func main() {
	// Load .env file if present (ignore error if it doesn't exist)
	_ = godotenv.Load()

	logger := log.New(log.Config{Component: log.ComponentDashboard})
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", log.FieldError, err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := snapshot.NewClient(cfg.APIBaseURL, cfg.FetchTimeout)
	store := snapshot.NewStore()
	poller := snapshot.NewPoller(client, store, logger)

	scheduler := schedule.New(logger)
	scheduler.Every(cfg.RefreshInterval, poller)

	// Prime the snapshot before serving; a failed first fetch is logged and
	// the dashboard starts empty until the next tick succeeds.
	if err := scheduler.RunNow(poller); err != nil {
		logger.Warn("Initial snapshot fetch failed", log.FieldError, err, "api_url", cfg.APIBaseURL)
	}

	scheduler.Start()
	defer scheduler.Stop()

	srv := dash.NewServer(":"+cfg.DashPort, store, logger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting dashboard server",
			"port", cfg.DashPort,
			"api_url", cfg.APIBaseURL,
			"refresh_interval", cfg.RefreshInterval.String())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Dashboard stopped with error", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Dashboard stopped gracefully")
}
