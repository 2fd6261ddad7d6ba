package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/insightlab/research-assistant/internal/core/domain"
	"github.com/insightlab/research-assistant/internal/core/ports"
)

// ResearchUseCase passes a question about a single document through the
// external LLM. There is no scoring here: the generated text is wrapped
// into one result record with full relevance.
type ResearchUseCase struct {
	index     ports.DocumentIndex
	generator ports.ResearchGenerator
	source    string
}

func NewResearchUseCase(index ports.DocumentIndex, generator ports.ResearchGenerator, source string) *ResearchUseCase {
	if source == "" {
		source = "LLM"
	}
	return &ResearchUseCase{
		index:     index,
		generator: generator,
		source:    source,
	}
}

func (uc *ResearchUseCase) Ask(ctx context.Context, query string, documentID int64) (*domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "research", errors.New("query is required"))
	}
	if documentID <= 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "research", errors.New("document id is required"))
	}

	content, ok := uc.index.Get(documentID)
	if !ok {
		return nil, domain.WrapError(domain.ErrDocumentNotFound, "research", errors.New("document not indexed"))
	}

	answer, err := uc.generator.Research(ctx, query, content.Content)
	if err != nil {
		return nil, domain.WrapError(domain.ErrUpstream, "research", err)
	}

	return &domain.SearchResult{
		ID:         1,
		Title:      uc.source + " Research Result",
		Snippet:    answer,
		Source:     uc.source,
		Type:       domain.ResultTypeDocument,
		Relevance:  1.0,
		Citations:  []string{content.Name},
		DocumentID: content.ID,
		PageNumber: 1,
	}, nil
}
