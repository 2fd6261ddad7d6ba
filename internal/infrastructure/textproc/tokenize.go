package textproc

import (
	"strings"
	"unicode"
)

// NormalizeWords lowercases text, strips everything that is not a letter,
// digit or whitespace, and splits on word boundaries. Pure and total:
// empty input yields an empty slice.
func NormalizeWords(text string) []string {
	if text == "" {
		return nil
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}

// SplitSentences splits text on sentence terminators and discards
// empty or whitespace-only fragments.
func SplitSentences(text string) []string {
	if text == "" {
		return nil
	}

	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := make([]string, 0, len(raw))
	for _, fragment := range raw {
		fragment = strings.TrimSpace(fragment)
		if fragment != "" {
			out = append(out, fragment)
		}
	}
	return out
}
