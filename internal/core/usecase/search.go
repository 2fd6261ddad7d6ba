package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/insightlab/research-assistant/internal/core/domain"
	"github.com/insightlab/research-assistant/internal/core/ports"
)

const (
	// A document whose keyword overlap scores at or below this threshold
	// produces no result rather than a low-confidence one.
	relevanceThreshold = 0.3
	maxResults         = 8

	snippetFallbackLen = 200
	snippetSearchLimit = 300
	snippetBefore      = 50
	snippetAfter       = 150
)

// RandInt returns a pseudo-random int in [0, n). Injected so page-number
// estimation and title template choice can be pinned in tests.
type RandInt func(n int) int

type SearchUseCase struct {
	index  ports.DocumentIndex
	scorer ports.RelevanceScorer
	live   ports.LiveSource
	ledger ports.CreditLedger

	randInt    RandInt
	creditCost int
}

func NewSearchUseCase(
	index ports.DocumentIndex,
	scorer ports.RelevanceScorer,
	live ports.LiveSource,
	ledger ports.CreditLedger,
	randInt RandInt,
	creditCost int,
) *SearchUseCase {
	return &SearchUseCase{
		index:      index,
		scorer:     scorer,
		live:       live,
		ledger:     ledger,
		randInt:    randInt,
		creditCost: creditCost,
	}
}

// Search ranks chunks of the requested documents against the query, blends
// in live results, and returns at most eight hits sorted by relevance
// descending. Unknown document ids are skipped silently: a document may
// have been deleted or may still be ingesting, which is a normal race.
func (uc *SearchUseCase) Search(ctx context.Context, query string, documentIDs []int64) ([]domain.SearchResult, error) {
	terms := uc.scorer.QueryTerms(query)

	results := make([]domain.SearchResult, 0, maxResults)
	for _, id := range documentIDs {
		doc, ok := uc.index.Get(id)
		if !ok {
			continue
		}

		relevant := relevantChunks(doc.Chunks, terms)
		if len(relevant) == 0 {
			continue
		}

		relevance := uc.scorer.Score(terms, strings.Join(relevant, " "))
		if relevance <= relevanceThreshold {
			continue
		}

		results = append(results, domain.SearchResult{
			ID:         int64(len(results) + 1),
			Title:      uc.resultTitle(doc.Name, terms),
			Snippet:    extractSnippet(relevant[0], terms),
			Source:     doc.Name,
			Type:       domain.ResultTypeDocument,
			Relevance:  relevance,
			Citations:  []string{doc.Name},
			DocumentID: doc.ID,
			PageNumber: uc.estimatePage(doc.Metadata.PageCount),
		})
	}

	results = append(results, uc.live.Results(query, terms)...)

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	uc.charge(ctx, query)
	return results, nil
}

// relevantChunks keeps chunks containing at least one query term as a
// case-insensitive substring, preserving document order.
func relevantChunks(chunks, terms []string) []string {
	if len(terms) == 0 {
		return nil
	}
	out := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		lower := strings.ToLower(chunk)
		for _, term := range terms {
			if term != "" && strings.Contains(lower, term) {
				out = append(out, chunk)
				break
			}
		}
	}
	return out
}

var titleTemplates = []func(term, baseName string) string{
	func(term, baseName string) string { return term + " Insights from " + baseName },
	func(term, baseName string) string { return "Key Findings: " + term + " in " + baseName },
	func(term, baseName string) string { return baseName + " - " + term + " Overview" },
	func(term, baseName string) string { return "Research Analysis: " + term + " Trends" },
}

func (uc *SearchUseCase) resultTitle(fileName string, terms []string) string {
	baseName := strings.TrimSuffix(fileName, extension(fileName))
	term := "Analysis"
	for _, candidate := range terms {
		if len(candidate) > 3 {
			term = capitalize(candidate)
			break
		}
	}
	return titleTemplates[uc.randInt(len(titleTemplates))](term, baseName)
}

// extractSnippet windows the chunk around the first query-term occurrence
// found within the leading 300 characters, falling back to the first 200
// characters when none is found there.
func extractSnippet(chunk string, terms []string) string {
	snippet := chunk
	if len(snippet) > snippetFallbackLen {
		snippet = snippet[:runeBoundary(snippet, snippetFallbackLen)]
	}

	lower := strings.ToLower(chunk)
	for _, term := range terms {
		if term == "" {
			continue
		}
		idx := strings.Index(lower, term)
		if idx < 0 || idx >= snippetSearchLimit {
			continue
		}
		start := idx - snippetBefore
		if start < 0 {
			start = 0
		}
		end := idx + snippetAfter
		if end > len(chunk) {
			end = len(chunk)
		}
		start = runeBoundary(chunk, start)
		end = runeBoundary(chunk, end)
		snippet = chunk[start:end]
		if start > 0 {
			snippet = "..." + snippet
		}
		if end < len(chunk) {
			snippet = snippet + "..."
		}
		break
	}
	return snippet
}

// runeBoundary moves a byte offset back to the start of the rune it
// falls inside, so window slicing never splits multibyte text.
func runeBoundary(s string, i int) int {
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

// estimatePage picks a pseudo-random page bounded by the document's page
// count. There is no authoritative page-chunk mapping; the randomness
// source is injected so tests can pin it.
func (uc *SearchUseCase) estimatePage(pageCount int) int {
	if pageCount <= 0 {
		return 1
	}
	return uc.randInt(pageCount) + 1
}

func (uc *SearchUseCase) charge(ctx context.Context, query string) {
	if uc.ledger == nil || uc.creditCost <= 0 {
		return
	}
	if _, err := uc.ledger.Charge(ctx, uc.creditCost, "Research query: "+truncate(query, 80)); err != nil {
		slog.Warn("credit_charge_failed", "operation", "search", "error", err)
	}
}

func extension(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return strings.ToUpper(string(r)) + s[size:]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:runeBoundary(s, n)]
}
