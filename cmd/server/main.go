package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/insightlab/research-assistant/internal/adapters/http"
	"github.com/insightlab/research-assistant/internal/bootstrap"
	"github.com/insightlab/research-assistant/internal/config"
	"github.com/insightlab/research-assistant/internal/observability/logging"
)

func main() {
	cfg := config.Load()
	slog.SetDefault(logging.NewJSONLogger(bootstrap.ServiceName, cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		slog.Error("bootstrap_failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	router := httpadapter.NewRouter(
		bootstrap.ServiceName,
		app.IngestUC,
		app.LibraryUC,
		app.SearchUC,
		app.ReportUC,
		app.ResearchUC,
		app.BillingUC,
		app.Metrics,
		httpadapter.TrafficConfig{
			RateLimitRPS:       cfg.APIRateLimitRPS,
			RateLimitBurst:     cfg.APIRateLimitBurst,
			MaxConcurrent:      cfg.APIMaxConcurrent,
			ConcurrencyTimeout: time.Duration(cfg.APIConcurrencyWaitMS) * time.Millisecond,
		},
	).Handler()

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	workerDone := make(chan error, 1)
	go func() {
		slog.Info("ingest_workers_started", "subject", cfg.NATSSubject, "workers", cfg.IngestWorkers)
		workerDone <- app.Workers.Run(ctx)
	}()

	go func() {
		slog.Info("api_listening", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("api_server_failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("api_shutdown_failed", "error", err)
	}

	select {
	case err := <-workerDone:
		if err != nil {
			slog.Error("ingest_workers_stopped", "error", err)
		}
	case <-shutdownCtx.Done():
		slog.Warn("ingest_workers_shutdown_timeout")
	}
}
