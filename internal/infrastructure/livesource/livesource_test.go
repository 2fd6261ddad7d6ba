package livesource

import (
	"strings"
	"testing"

	"github.com/insightlab/research-assistant/internal/core/domain"
)

func TestResultsMatchesTopicsByExactTerm(t *testing.T) {
	src := NewStatic()
	results := src.Results("artificial intelligence market growth", []string{"artificial", "intelligence", "market", "growth"})

	// AI topic + market topic + generic.
	if len(results) != 3 {
		t.Fatalf("expected 3 live results, got %d", len(results))
	}
	for _, r := range results {
		if r.Type != domain.ResultTypeLive {
			t.Fatalf("expected live result type, got %s", r.Type)
		}
		if r.Relevance <= 0 || r.Relevance > 1 {
			t.Fatalf("relevance out of bounds: %v", r.Relevance)
		}
	}
	if results[len(results)-1].Relevance != 0.78 {
		t.Fatalf("expected generic result relevance 0.78 last, got %v", results[len(results)-1].Relevance)
	}
}

func TestResultsNoTopicMatchStillHasGeneric(t *testing.T) {
	src := NewStatic()
	results := src.Results("quantum entanglement", []string{"quantum", "entanglement"})
	if len(results) != 1 {
		t.Fatalf("expected only the generic result, got %d", len(results))
	}
	if !strings.Contains(results[0].Title, "Quantum") {
		t.Fatalf("expected first term in generic title, got %q", results[0].Title)
	}
	if !strings.Contains(results[0].Snippet, "quantum and entanglement") {
		t.Fatalf("expected first two terms joined in snippet, got %q", results[0].Snippet)
	}
}

func TestResultsEmptyTermsGraceful(t *testing.T) {
	src := NewStatic()
	results := src.Results("", nil)
	if len(results) != 1 {
		t.Fatalf("expected exactly the generic result, got %d", len(results))
	}
	if !strings.Contains(results[0].Title, "Research") {
		t.Fatalf("expected Research fallback in title, got %q", results[0].Title)
	}
}

func TestResultsSubstringTermDoesNotMatchTopic(t *testing.T) {
	src := NewStatic()
	// "marketplace" is not an exact topic keyword.
	results := src.Results("marketplace", []string{"marketplace"})
	if len(results) != 1 {
		t.Fatalf("expected only generic result for non-exact term, got %d", len(results))
	}
}
