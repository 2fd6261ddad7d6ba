package textproc

import (
	"sort"
	"strings"
)

const (
	defaultGroupSize   = 3
	defaultMinChunkLen = 50
	defaultTermLimit   = 10
	defaultMinTermLen  = 5
)

// Analyzer derives citable chunks and key terms from raw document text.
// The grouping size and length floors are part of the observable search
// contract, so the zero-argument constructor is the one production uses.
type Analyzer struct {
	groupSize   int
	minChunkLen int
	termLimit   int
	minTermLen  int
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		groupSize:   defaultGroupSize,
		minChunkLen: defaultMinChunkLen,
		termLimit:   defaultTermLimit,
		minTermLen:  defaultMinTermLen,
	}
}

// Chunks splits text into sentences and groups them into consecutive
// windows of up to groupSize, joined with ". " and a trailing period.
// Groups at or below the minimum length are not citable and are dropped.
// Deterministic: identical input always yields identical output.
func (a *Analyzer) Chunks(text string) []string {
	return a.Group(SplitSentences(text))
}

// Group chunks an already-split sentence sequence, preserving order.
func (a *Analyzer) Group(sentences []string) []string {
	if len(sentences) == 0 {
		return nil
	}

	out := make([]string, 0, len(sentences)/a.groupSize+1)
	for start := 0; start < len(sentences); start += a.groupSize {
		end := start + a.groupSize
		if end > len(sentences) {
			end = len(sentences)
		}
		chunk := strings.TrimSpace(strings.Join(sentences[start:end], ". ")) + "."
		if len(chunk) > a.minChunkLen {
			out = append(out, chunk)
		}
	}
	return out
}

// KeyTerms returns the document's topical fingerprint: the most frequent
// normalized words longer than four characters, frequency-descending,
// capped at ten. Ties keep first-occurrence order.
func (a *Analyzer) KeyTerms(text string) []string {
	type termCount struct {
		term  string
		count int
	}

	counts := make(map[string]int)
	order := make([]termCount, 0, 64)
	for _, word := range NormalizeWords(text) {
		if len(word) < a.minTermLen {
			continue
		}
		if _, seen := counts[word]; !seen {
			order = append(order, termCount{term: word})
		}
		counts[word]++
	}
	for i := range order {
		order[i].count = counts[order[i].term]
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})

	limit := a.termLimit
	if limit > len(order) {
		limit = len(order)
	}
	out := make([]string, 0, limit)
	for _, tc := range order[:limit] {
		out = append(out, tc.term)
	}
	return out
}
