package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/insightlab/research-assistant/internal/core/domain"
)

type reportRepoFake struct {
	created []domain.Report
	err     error
}

func (f *reportRepoFake) Create(_ context.Context, report *domain.Report) error {
	if f.err != nil {
		return f.err
	}
	report.ID = int64(len(f.created) + 1)
	f.created = append([]domain.Report{*report}, f.created...)
	return nil
}

func (f *reportRepoFake) List(context.Context) ([]domain.Report, error) {
	return f.created, nil
}

func TestReportCreateSuccess(t *testing.T) {
	repo := &reportRepoFake{}
	ledger := &ledgerFake{}
	uc := NewReportUseCase(repo, ledger, 5)

	results := []domain.SearchResult{{ID: 1, Title: "hit", Relevance: 0.9}}
	report, err := uc.Create(context.Background(), "Market Analysis Report", "AI adoption trends", results)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if report.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if report.Status != domain.ReportStatusCompleted {
		t.Fatalf("expected completed status, got %s", report.Status)
	}
	if report.GeneratedAt.IsZero() {
		t.Fatalf("expected generated timestamp")
	}
	if len(ledger.charged) != 1 || ledger.charged[0] != 5 {
		t.Fatalf("expected 5 credit charge, got %v", ledger.charged)
	}
}

func TestReportCreateRequiresQuery(t *testing.T) {
	uc := NewReportUseCase(&reportRepoFake{}, nil, 0)

	_, err := uc.Create(context.Background(), "Title", "   ", nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestReportCreateDefaultsTitle(t *testing.T) {
	repo := &reportRepoFake{}
	uc := NewReportUseCase(repo, nil, 0)

	report, err := uc.Create(context.Background(), "", "competitive landscape for SaaS", nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !strings.HasPrefix(report.Title, "Research Report: ") {
		t.Fatalf("expected default title, got %q", report.Title)
	}
	if report.Results == nil {
		t.Fatalf("expected non-nil results slice")
	}
}

func TestReportListNewestFirst(t *testing.T) {
	repo := &reportRepoFake{}
	uc := NewReportUseCase(repo, nil, 0)

	if _, err := uc.Create(context.Background(), "first", "query one", nil); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := uc.Create(context.Background(), "second", "query two", nil); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	reports, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(reports) != 2 || reports[0].Title != "second" {
		t.Fatalf("expected newest first, got %+v", reports)
	}
}

func TestReportCreateRepoError(t *testing.T) {
	uc := NewReportUseCase(&reportRepoFake{err: errors.New("db down")}, nil, 0)
	if _, err := uc.Create(context.Background(), "t", "q", nil); err == nil {
		t.Fatalf("expected error")
	}
}
