package textproc

import (
	"reflect"
	"strings"
	"testing"
)

func TestChunksGroupsThreeSentences(t *testing.T) {
	a := NewAnalyzer()
	text := "The market expanded rapidly across all major segments. " +
		"Healthcare providers invested heavily in automation tools. " +
		"Financial institutions followed with similar programs. " +
		"Manufacturing lagged behind early adopters considerably."

	chunks := a.Chunks(text)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %v", len(chunks), chunks)
	}
	if !strings.HasSuffix(chunks[0], ".") {
		t.Fatalf("expected trailing period, got %q", chunks[0])
	}
	if !strings.Contains(chunks[0], "The market expanded rapidly") {
		t.Fatalf("expected first sentence in first chunk, got %q", chunks[0])
	}
	if !strings.Contains(chunks[1], "Manufacturing lagged") {
		t.Fatalf("expected remainder in second chunk, got %q", chunks[1])
	}
}

func TestChunksDropsShortGroups(t *testing.T) {
	a := NewAnalyzer()
	for _, chunk := range a.Chunks("Short. Tiny. Small. Ok.") {
		if len(chunk) <= 50 {
			t.Fatalf("chunk below minimum length leaked through: %q", chunk)
		}
	}
}

func TestChunksNeverReturnsShortChunks(t *testing.T) {
	a := NewAnalyzer()
	inputs := []string{
		"",
		"One.",
		"A fairly long sentence describing the quarterly revenue trends. Another detailed sentence about market composition and growth.",
		strings.Repeat("Consistent sentence about industry analysis and trends. ", 20),
	}
	for _, text := range inputs {
		for _, chunk := range a.Chunks(text) {
			if len(chunk) <= 50 {
				t.Fatalf("chunk %q has length %d", chunk, len(chunk))
			}
		}
	}
}

func TestChunksDeterministic(t *testing.T) {
	a := NewAnalyzer()
	text := strings.Repeat("The artificial intelligence market keeps growing every single quarter. ", 7)
	first := a.Chunks(text)
	second := a.Chunks(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("chunking is not deterministic: %v vs %v", first, second)
	}
}

func TestChunksPreserveSentenceOrder(t *testing.T) {
	a := NewAnalyzer()
	text := "Alpha section covers the introduction and scope of the work here. " +
		"Beta section explains the methodology in considerable detail. " +
		"Gamma section reports the principal findings of the study. " +
		"Delta section closes with recommendations for practitioners everywhere. " +
		"Epsilon section lists the references used throughout this document."

	joined := strings.Join(a.Chunks(text), " ")
	positions := []int{
		strings.Index(joined, "Alpha"),
		strings.Index(joined, "Beta"),
		strings.Index(joined, "Gamma"),
		strings.Index(joined, "Delta"),
		strings.Index(joined, "Epsilon"),
	}
	for i := 1; i < len(positions); i++ {
		if positions[i-1] < 0 || positions[i] < 0 || positions[i-1] > positions[i] {
			t.Fatalf("sentence order not preserved: %v", positions)
		}
	}
}

func TestKeyTermsFrequencyDescending(t *testing.T) {
	a := NewAnalyzer()
	text := "growth growth growth market market innovation"
	got := a.KeyTerms(text)
	want := []string{"growth", "market", "innovation"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("KeyTerms() = %v, want %v", got, want)
	}
}

func TestKeyTermsSkipsShortWordsAndCapsAtTen(t *testing.T) {
	a := NewAnalyzer()
	text := "an ai the for data data model model trend trend value value " +
		"asset asset yield yield curve curve basis basis range range " +
		"index index ratio ratio quote quote"
	terms := a.KeyTerms(text)
	if len(terms) > 10 {
		t.Fatalf("expected at most 10 terms, got %d", len(terms))
	}
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		if len(term) <= 4 {
			t.Fatalf("term %q shorter than minimum", term)
		}
		if seen[term] {
			t.Fatalf("duplicate term %q", term)
		}
		seen[term] = true
	}
}

func TestKeyTermsTieBreakFirstSeen(t *testing.T) {
	a := NewAnalyzer()
	got := a.KeyTerms("zebra apple zebra apple mango")
	want := []string{"zebra", "apple", "mango"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("KeyTerms() = %v, want %v", got, want)
	}
}
