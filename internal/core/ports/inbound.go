package ports

import (
	"context"
	"io"

	"github.com/insightlab/research-assistant/internal/core/domain"
)

// DocumentIngestor is the inbound contract for document upload orchestration.
type DocumentIngestor interface {
	Upload(ctx context.Context, filename, mimeType string, sizeBytes int64, body io.Reader) (*domain.Document, error)
}

// DocumentProcessor is the inbound contract for asynchronous document parsing.
type DocumentProcessor interface {
	ProcessByID(ctx context.Context, documentID int64) error
}

// DocumentLibrary is the inbound read/delete model for uploaded documents.
type DocumentLibrary interface {
	GetByID(ctx context.Context, id int64) (*domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)
	Delete(ctx context.Context, id int64) error
}

// SearchService runs a ranked search over indexed documents plus live sources.
type SearchService interface {
	Search(ctx context.Context, query string, documentIDs []int64) ([]domain.SearchResult, error)
}

// ReportService persists and lists research reports.
type ReportService interface {
	Create(ctx context.Context, title, query string, results []domain.SearchResult) (*domain.Report, error)
	List(ctx context.Context) ([]domain.Report, error)
}

// ResearchService answers a free-text question against a single document
// through the external LLM.
type ResearchService interface {
	Ask(ctx context.Context, query string, documentID int64) (*domain.SearchResult, error)
}

// BillingService exposes the credit balance and purchase operations.
type BillingService interface {
	Balance(ctx context.Context) (int, error)
	Purchase(ctx context.Context, credits int, amountUSD float64, description string) (int, error)
	History(ctx context.Context) ([]domain.CreditTransaction, error)
}
