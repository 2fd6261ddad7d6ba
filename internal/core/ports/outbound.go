package ports

import (
	"context"
	"io"

	"github.com/insightlab/research-assistant/internal/core/domain"
)

// DocumentRepository persists document upload records.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id int64) (*domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)
	UpdateStatus(ctx context.Context, id int64, status domain.DocumentStatus) error
	SaveAnalysis(ctx context.Context, id int64, pageCount, wordCount int) error
	Delete(ctx context.Context, id int64) error
}

// ObjectStorage stores source documents.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
}

// MessageQueue publishes/consumes ingestion events.
type MessageQueue interface {
	PublishDocumentIngested(ctx context.Context, documentID int64) error
	SubscribeDocumentIngested(ctx context.Context, handler func(context.Context, int64) error) error
}

// TextExtractor extracts plain text from a stored document.
type TextExtractor interface {
	Extract(ctx context.Context, doc *domain.Document) (string, error)
}

// ContentAnalyzer turns raw text into citable chunks and key terms.
type ContentAnalyzer interface {
	Chunks(text string) []string
	KeyTerms(text string) []string
}

// RelevanceScorer derives query terms and computes bounded relevance.
type RelevanceScorer interface {
	QueryTerms(query string) []string
	Score(terms []string, text string) float64
}

// DocumentIndex is the in-memory store the search engine queries.
// Contents are immutable after Put; Put is all-or-nothing.
type DocumentIndex interface {
	Put(content domain.DocumentContent)
	Get(id int64) (domain.DocumentContent, bool)
	All() []domain.DocumentContent
	Delete(id int64)
}

// LiveSource contributes synthetic live results matched by query terms.
type LiveSource interface {
	Results(query string, terms []string) []domain.SearchResult
}

// ResearchGenerator asks the external LLM a question about a document.
type ResearchGenerator interface {
	Research(ctx context.Context, question, documentText string) (string, error)
}

// ReportRepository persists reports, listed newest first.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	List(ctx context.Context) ([]domain.Report, error)
}

// CreditLedger is the billing counter with its transaction log.
// Charge floors the balance at zero, mirroring the ledger's clamp.
type CreditLedger interface {
	Charge(ctx context.Context, credits int, description string) (int, error)
	Purchase(ctx context.Context, credits int, amountUSD float64, description string) (int, error)
	Balance(ctx context.Context) (int, error)
	History(ctx context.Context) ([]domain.CreditTransaction, error)
}
