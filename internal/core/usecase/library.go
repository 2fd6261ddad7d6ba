package usecase

import (
	"context"
	"fmt"

	"github.com/insightlab/research-assistant/internal/core/domain"
	"github.com/insightlab/research-assistant/internal/core/ports"
)

// LibraryUseCase is the read/delete surface of the document library.
type LibraryUseCase struct {
	repo    ports.DocumentRepository
	storage ports.ObjectStorage
	index   ports.DocumentIndex
}

func NewLibraryUseCase(
	repo ports.DocumentRepository,
	storage ports.ObjectStorage,
	index ports.DocumentIndex,
) *LibraryUseCase {
	return &LibraryUseCase{
		repo:    repo,
		storage: storage,
		index:   index,
	}
}

func (uc *LibraryUseCase) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *LibraryUseCase) List(ctx context.Context) ([]domain.Document, error) {
	return uc.repo.List(ctx)
}

// Delete removes the document from the index first so searches stop
// finding it, then the metadata record and stored file. Searches racing
// the removal skip the id silently.
func (uc *LibraryUseCase) Delete(ctx context.Context, id int64) error {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	uc.index.Delete(id)
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete document record: %w", err)
	}
	if err := uc.storage.Remove(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("remove stored file: %w", err)
	}
	return nil
}
