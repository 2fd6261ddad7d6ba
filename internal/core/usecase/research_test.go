package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/insightlab/research-assistant/internal/core/domain"
)

type generatorFake struct {
	answer   string
	err      error
	question string
	document string
}

func (f *generatorFake) Research(_ context.Context, question, documentText string) (string, error) {
	f.question = question
	f.document = documentText
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func TestResearchAskWrapsAnswer(t *testing.T) {
	index := &searchIndexFake{docs: map[int64]domain.DocumentContent{
		7: {
			ID:      7,
			Name:    "AI_Market_Research_2024.pdf",
			Content: "The market grew rapidly in 2024.",
		},
	}}
	gen := &generatorFake{answer: "The market grew by 38% year over year."}
	uc := NewResearchUseCase(index, gen, "Gemini")

	result, err := uc.Ask(context.Background(), "How fast did the market grow?", 7)
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if result.Title != "Gemini Research Result" {
		t.Fatalf("unexpected title %q", result.Title)
	}
	if result.Snippet != gen.answer {
		t.Fatalf("unexpected snippet %q", result.Snippet)
	}
	if result.Relevance != 1.0 || result.PageNumber != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(result.Citations) != 1 || result.Citations[0] != "AI_Market_Research_2024.pdf" {
		t.Fatalf("unexpected citations %v", result.Citations)
	}
	if gen.question != "How fast did the market grow?" {
		t.Fatalf("generator got question %q", gen.question)
	}
	if gen.document != "The market grew rapidly in 2024." {
		t.Fatalf("generator got document %q", gen.document)
	}
}

func TestResearchAskValidatesInput(t *testing.T) {
	uc := NewResearchUseCase(indexWithDoc(1, "doc.txt", "chunk"), &generatorFake{}, "")

	if _, err := uc.Ask(context.Background(), "  ", 1); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank query, got %v", err)
	}
	if _, err := uc.Ask(context.Background(), "q", 0); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing id, got %v", err)
	}
}

func TestResearchAskUnknownDocument(t *testing.T) {
	uc := NewResearchUseCase(&searchIndexFake{docs: map[int64]domain.DocumentContent{}}, &generatorFake{}, "")

	_, err := uc.Ask(context.Background(), "question", 99)
	if !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestResearchAskUpstreamFailure(t *testing.T) {
	index := indexWithDoc(3, "doc.txt", "chunk")
	uc := NewResearchUseCase(index, &generatorFake{err: errors.New("timeout")}, "")

	_, err := uc.Ask(context.Background(), "question", 3)
	if !domain.IsKind(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestResearchDefaultSource(t *testing.T) {
	index := indexWithDoc(1, "doc.txt", "chunk")
	uc := NewResearchUseCase(index, &generatorFake{answer: "a"}, "")

	result, err := uc.Ask(context.Background(), "q", 1)
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if result.Title != "LLM Research Result" || result.Source != "LLM" {
		t.Fatalf("expected default source, got %+v", result)
	}
}
