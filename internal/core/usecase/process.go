package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/insightlab/research-assistant/internal/core/domain"
	"github.com/insightlab/research-assistant/internal/core/ports"
)

// bytesPerPage backs the page-count heuristic floor(size/50000)+1. It is a
// placeholder for real pagination and part of the observable contract.
const bytesPerPage = 50000

type ProcessDocumentUseCase struct {
	repo      ports.DocumentRepository
	storage   ports.ObjectStorage
	extractor ports.TextExtractor
	analyzer  ports.ContentAnalyzer
	index     ports.DocumentIndex
}

func NewProcessDocumentUseCase(
	repo ports.DocumentRepository,
	storage ports.ObjectStorage,
	extractor ports.TextExtractor,
	analyzer ports.ContentAnalyzer,
	index ports.DocumentIndex,
) *ProcessDocumentUseCase {
	return &ProcessDocumentUseCase{
		repo:      repo,
		storage:   storage,
		extractor: extractor,
		analyzer:  analyzer,
		index:     index,
	}
}

// ProcessByID parses a stored document and makes it searchable. An
// unparseable document is rolled back entirely: record and stored file
// removed, nothing partial left behind. The index insert comes last so a
// document never becomes searchable while its record still says
// processing; a row stranded there by a late persistence failure is
// retried by recovery on the next start.
func (uc *ProcessDocumentUseCase) ProcessByID(ctx context.Context, documentID int64) error {
	doc, err := uc.repo.GetByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("fetch document by id: %w", err)
	}

	content, err := uc.parse(ctx, doc)
	if err != nil {
		uc.rollback(ctx, doc)
		return err
	}

	if err := uc.repo.SaveAnalysis(ctx, doc.ID, content.Metadata.PageCount, content.Metadata.WordCount); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	if err := uc.repo.UpdateStatus(ctx, doc.ID, domain.StatusProcessed); err != nil {
		return fmt.Errorf("set status=processed: %w", err)
	}

	uc.index.Put(content)
	return nil
}

func (uc *ProcessDocumentUseCase) parse(ctx context.Context, doc *domain.Document) (domain.DocumentContent, error) {
	text, err := uc.extractor.Extract(ctx, doc)
	if err != nil {
		return domain.DocumentContent{}, fmt.Errorf("extract text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return domain.DocumentContent{}, domain.WrapError(domain.ErrInvalidInput, "extract text", errors.New("empty extracted text"))
	}

	chunks := uc.analyzer.Chunks(text)
	if len(chunks) == 0 {
		return domain.DocumentContent{}, domain.WrapError(domain.ErrInvalidInput, "chunk document", errors.New("no citable chunks"))
	}

	return domain.DocumentContent{
		ID:      doc.ID,
		Name:    doc.Name,
		Content: text,
		Chunks:  chunks,
		Metadata: domain.ContentMetadata{
			PageCount: int(doc.SizeBytes/bytesPerPage) + 1,
			WordCount: len(strings.Fields(text)),
			KeyTerms:  uc.analyzer.KeyTerms(text),
		},
	}, nil
}

// rollback removes the failed upload so no half-processed document lingers
// in the library. Cleanup errors are secondary to the processing error.
func (uc *ProcessDocumentUseCase) rollback(ctx context.Context, doc *domain.Document) {
	_ = uc.repo.Delete(ctx, doc.ID)
	_ = uc.storage.Remove(ctx, doc.StoragePath)
}
