package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/insightlab/research-assistant/internal/core/ports"
	"github.com/insightlab/research-assistant/internal/observability/metrics"
)

const processTimeout = 5 * time.Minute

// IngestWorkers consumes document ids from the queue and parses them on
// a bounded goroutine pool so a burst of uploads cannot exhaust memory.
type IngestWorkers struct {
	queue     ports.MessageQueue
	processor ports.DocumentProcessor
	repo      ports.DocumentRepository
	metrics   *metrics.IngestMetrics
	pool      *ants.Pool
}

func NewIngestWorkers(
	queue ports.MessageQueue,
	processor ports.DocumentProcessor,
	repo ports.DocumentRepository,
	ingestMetrics *metrics.IngestMetrics,
	size int,
) (*IngestWorkers, error) {
	if size < 1 {
		size = 1
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}
	return &IngestWorkers{
		queue:     queue,
		processor: processor,
		repo:      repo,
		metrics:   ingestMetrics,
		pool:      pool,
	}, nil
}

// Run blocks until ctx is cancelled. Queued messages are dispatched to
// the pool; the pool task uses ctx rather than the per-message context,
// which is cancelled as soon as the handler returns.
func (w *IngestWorkers) Run(ctx context.Context) error {
	return w.queue.SubscribeDocumentIngested(ctx, func(_ context.Context, documentID int64) error {
		return w.pool.Submit(func() {
			w.process(ctx, documentID)
		})
	})
}

func (w *IngestWorkers) process(ctx context.Context, documentID int64) {
	processCtx, cancel := context.WithTimeout(ctx, processTimeout)
	defer cancel()

	if w.metrics != nil {
		w.metrics.StartDocument()
		if doc, err := w.repo.GetByID(processCtx, documentID); err == nil {
			w.metrics.ObserveQueueLag(ServiceName, time.Since(doc.UploadedAt))
		}
	}

	start := time.Now()
	err := w.processor.ProcessByID(processCtx, documentID)
	if w.metrics != nil {
		w.metrics.FinishDocument(ServiceName, time.Since(start), err)
	}
	if err != nil {
		slog.Error("document_process_failed", "document_id", documentID, "error", err)
		return
	}
	slog.Info("document_processed", "document_id", documentID, "duration_ms", float64(time.Since(start).Microseconds())/1000.0)
}

func (w *IngestWorkers) Release() {
	if w.pool != nil {
		w.pool.Release()
	}
}
