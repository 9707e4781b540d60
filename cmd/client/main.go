package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/vitalog/vitalog/internal/adapter"
	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/connectivity"
	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/service"
	"github.com/vitalog/vitalog/internal/store"
	"github.com/vitalog/vitalog/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("vitalog-agent")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	}, log)

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	monitor := connectivity.NewMonitor(log)
	prober := connectivity.NewProber(monitor, serverAdapter.Ping, cfg.Sync.ProbeInterval, log)

	services := service.NewClientServices(localStorage, serverAdapter, monitor, cfg.Sync.Cooldown, log)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	agentWorkers := workers.NewWorkers(
		workers.NewProberWorker(prober),
		workers.NewSyncJobWorker(services.SyncJob, cfg.Sync.Interval),
	)
	agentWorkers.Run(ctx)

	log.Info().Msg("sync agent started")
	<-ctx.Done()

	services.SyncJob.Stop()
	log.Info().Msg("sync agent stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
