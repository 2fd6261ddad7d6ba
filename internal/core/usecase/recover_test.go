package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/insightlab/research-assistant/internal/core/domain"
)

type recoverRepoFake struct {
	docs    []domain.Document
	listErr error
}

func (f *recoverRepoFake) List(context.Context) ([]domain.Document, error) {
	return f.docs, f.listErr
}
func (f *recoverRepoFake) Create(context.Context, *domain.Document) error { return nil }
func (f *recoverRepoFake) GetByID(context.Context, int64) (*domain.Document, error) {
	return nil, errors.New("not implemented")
}
func (f *recoverRepoFake) UpdateStatus(context.Context, int64, domain.DocumentStatus) error {
	return nil
}
func (f *recoverRepoFake) SaveAnalysis(context.Context, int64, int, int) error { return nil }
func (f *recoverRepoFake) Delete(context.Context, int64) error                 { return nil }

type recoverProcessorFake struct {
	processed []int64
	failID    int64
}

func (f *recoverProcessorFake) ProcessByID(_ context.Context, id int64) error {
	if id == f.failID {
		return errors.New("parse failed")
	}
	f.processed = append(f.processed, id)
	return nil
}

func TestRecoverReprocessesAllPersistedDocuments(t *testing.T) {
	repo := &recoverRepoFake{docs: []domain.Document{
		{ID: 1, Name: "a.txt", Status: domain.StatusProcessed},
		{ID: 2, Name: "b.txt", Status: domain.StatusProcessing},
		{ID: 3, Name: "c.pdf", Status: domain.StatusProcessed},
	}}
	processor := &recoverProcessorFake{}
	uc := NewRecoverDocumentsUseCase(repo, processor)

	if err := uc.Recover(context.Background()); err != nil {
		t.Fatalf("Recover() error = %v", err)
	}
	if len(processor.processed) != 3 {
		t.Fatalf("expected 3 documents reprocessed, got %v", processor.processed)
	}
}

func TestRecoverContinuesPastFailures(t *testing.T) {
	repo := &recoverRepoFake{docs: []domain.Document{
		{ID: 1, Name: "a.txt", Status: domain.StatusProcessed},
		{ID: 2, Name: "gone.txt", Status: domain.StatusProcessed},
		{ID: 3, Name: "c.txt", Status: domain.StatusProcessed},
	}}
	processor := &recoverProcessorFake{failID: 2}
	uc := NewRecoverDocumentsUseCase(repo, processor)

	if err := uc.Recover(context.Background()); err != nil {
		t.Fatalf("Recover() error = %v", err)
	}
	if len(processor.processed) != 2 || processor.processed[0] != 1 || processor.processed[1] != 3 {
		t.Fatalf("expected documents 1 and 3 reprocessed, got %v", processor.processed)
	}
}

func TestRecoverListFailure(t *testing.T) {
	repo := &recoverRepoFake{listErr: errors.New("db down")}
	uc := NewRecoverDocumentsUseCase(repo, &recoverProcessorFake{})

	if err := uc.Recover(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
