package extractor

import (
	"context"
	"testing"

	"github.com/insightlab/research-assistant/internal/core/domain"
)

type extractorFake struct {
	text  string
	calls int
}

func (f *extractorFake) Extract(context.Context, *domain.Document) (string, error) {
	f.calls++
	return f.text, nil
}

func TestDispatchByMimeType(t *testing.T) {
	pdf := &extractorFake{text: "pdf"}
	fallback := &extractorFake{text: "plain"}
	d := NewDispatcher(pdf, fallback)

	cases := []struct {
		name string
		doc  domain.Document
		want string
	}{
		{"pdf mime", domain.Document{MimeType: "application/pdf", Name: "report.pdf"}, "pdf"},
		{"pdf extension only", domain.Document{MimeType: "application/octet-stream", Name: "Report.PDF"}, "pdf"},
		{"plain text", domain.Document{MimeType: "text/plain", Name: "notes.txt"}, "plain"},
		{"unknown mime", domain.Document{MimeType: "", Name: "notes.md"}, "plain"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := d.Extract(context.Background(), &tc.doc)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("routed to %q extractor, want %q", got, tc.want)
			}
		})
	}
}
