package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/insightlab/research-assistant/internal/core/ports"
)

// RecoverDocumentsUseCase rebuilds the in-memory chunk index from the
// persisted document records. Parsed content is never stored, so after a
// restart every row must be re-run through the processing pipeline before
// search can see it. Rows stuck in processing are finished the same way,
// since their ingestion event died with the previous process.
type RecoverDocumentsUseCase struct {
	repo      ports.DocumentRepository
	processor ports.DocumentProcessor
}

func NewRecoverDocumentsUseCase(
	repo ports.DocumentRepository,
	processor ports.DocumentProcessor,
) *RecoverDocumentsUseCase {
	return &RecoverDocumentsUseCase{
		repo:      repo,
		processor: processor,
	}
}

// Recover reprocesses every persisted document. A document that fails is
// rolled back by the processor, so the library and the index stay
// consistent; the failure is logged and recovery moves on.
func (uc *RecoverDocumentsUseCase) Recover(ctx context.Context) error {
	docs, err := uc.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list documents for recovery: %w", err)
	}

	recovered := 0
	for _, doc := range docs {
		if err := uc.processor.ProcessByID(ctx, doc.ID); err != nil {
			slog.Warn("document_recovery_failed",
				"document_id", doc.ID,
				"name", doc.Name,
				"error", err)
			continue
		}
		recovered++
	}

	if len(docs) > 0 {
		slog.Info("document_index_recovered", "total", len(docs), "recovered", recovered)
	}
	return nil
}
