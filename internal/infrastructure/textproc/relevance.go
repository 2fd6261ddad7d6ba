package textproc

import "strings"

const (
	minQueryTermLen = 3
	// A term occurring this often in a text block contributes its maximum
	// weight of 1.0 regardless of further repetition.
	termFrequencyCap = 10
)

// Scorer implements normalized term-frequency relevance scoring.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// QueryTerms lowercases the query, splits on whitespace and keeps tokens
// longer than two characters. An empty result means the query can produce
// no document matches.
func (s *Scorer) QueryTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= minQueryTermLen {
			out = append(out, f)
		}
	}
	return out
}

// Score computes a bounded [0,1] relevance for text against query terms.
// Each term contributes its case-insensitive occurrence count divided by
// ten, capped at 1.0; contributions are averaged over all terms and the
// result clamped. Zero terms score zero.
func (s *Scorer) Score(terms []string, text string) float64 {
	if len(terms) == 0 {
		return 0
	}

	lower := strings.ToLower(text)
	var sum float64
	for _, term := range terms {
		if term == "" {
			continue
		}
		contribution := float64(strings.Count(lower, term)) / termFrequencyCap
		if contribution > 1 {
			contribution = 1
		}
		sum += contribution
	}

	score := sum / float64(len(terms))
	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}
	return score
}
