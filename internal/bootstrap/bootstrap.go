// Package bootstrap wires configuration, infrastructure, and use cases
// into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/insightlab/research-assistant/internal/config"
	"github.com/insightlab/research-assistant/internal/core/ports"
	"github.com/insightlab/research-assistant/internal/core/usecase"
	"github.com/insightlab/research-assistant/internal/infrastructure/extractor"
	"github.com/insightlab/research-assistant/internal/infrastructure/extractor/pdfdoc"
	"github.com/insightlab/research-assistant/internal/infrastructure/extractor/plaintext"
	"github.com/insightlab/research-assistant/internal/infrastructure/index"
	"github.com/insightlab/research-assistant/internal/infrastructure/livesource"
	"github.com/insightlab/research-assistant/internal/infrastructure/llm/gemini"
	"github.com/insightlab/research-assistant/internal/infrastructure/queue/nats"
	"github.com/insightlab/research-assistant/internal/infrastructure/repository/postgres"
	"github.com/insightlab/research-assistant/internal/infrastructure/resilience"
	"github.com/insightlab/research-assistant/internal/infrastructure/storage/localfs"
	"github.com/insightlab/research-assistant/internal/infrastructure/textproc"
	"github.com/insightlab/research-assistant/internal/observability/metrics"
)

const ServiceName = "research-assistant"

type App struct {
	Config config.Config

	Queue ports.MessageQueue

	IngestUC   ports.DocumentIngestor
	ProcessUC  ports.DocumentProcessor
	LibraryUC  ports.DocumentLibrary
	SearchUC   ports.SearchService
	ReportUC   ports.ReportService
	ResearchUC ports.ResearchService
	BillingUC  ports.BillingService

	Metrics *metrics.ServerMetrics
	Workers *IngestWorkers

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	docRepo := postgres.NewDocumentRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	ledger := postgres.NewBillingRepository(db)

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultPolicy())
	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: executor,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	docIndex := index.NewMemory()
	analyzer := textproc.NewAnalyzer()
	scorer := textproc.NewScorer()
	live := livesource.NewStatic()

	extract := extractor.NewDispatcher(
		pdfdoc.NewExtractor(storage),
		plaintext.NewExtractor(storage),
	)

	geminiClient := gemini.New(cfg.GeminiURL, cfg.GeminiAPIKey, cfg.GeminiModel,
		gemini.WithExecutor(executor))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	ingestUC := usecase.NewIngestDocumentUseCase(docRepo, storage, queue)
	processUC := usecase.NewProcessDocumentUseCase(docRepo, storage, extract, analyzer, docIndex)

	// The chunk index lives in process memory; rebuild it from the stored
	// files before serving so persisted documents stay searchable across
	// restarts.
	if err := usecase.NewRecoverDocumentsUseCase(docRepo, processUC).Recover(ctx); err != nil {
		queue.Close()
		_ = db.Close()
		return nil, fmt.Errorf("recover document index: %w", err)
	}

	libraryUC := usecase.NewLibraryUseCase(docRepo, storage, docIndex)
	searchUC := usecase.NewSearchUseCase(docIndex, scorer, live, ledger, rng.Intn, cfg.SearchCreditCost)
	reportUC := usecase.NewReportUseCase(reportRepo, ledger, cfg.ReportCreditCost)
	researchUC := usecase.NewResearchUseCase(docIndex, geminiClient, "Gemini")
	billingUC := usecase.NewBillingUseCase(ledger)

	serverMetrics := metrics.NewServerMetrics(ServiceName)
	ingestMetrics := metrics.NewIngestMetrics(ServiceName, serverMetrics)

	workers, err := NewIngestWorkers(queue, processUC, docRepo, ingestMetrics, cfg.IngestWorkers)
	if err != nil {
		queue.Close()
		_ = db.Close()
		return nil, fmt.Errorf("init ingest workers: %w", err)
	}

	return &App{
		Config: cfg,
		Queue:  queue,

		IngestUC:   ingestUC,
		ProcessUC:  processUC,
		LibraryUC:  libraryUC,
		SearchUC:   searchUC,
		ReportUC:   reportUC,
		ResearchUC: researchUC,
		BillingUC:  billingUC,

		Metrics: serverMetrics,
		Workers: workers,

		closeFn: func() {
			workers.Release()
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
