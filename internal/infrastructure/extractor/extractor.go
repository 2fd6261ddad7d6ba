// Package extractor routes documents to a format-specific text extractor
// based on their MIME type.
package extractor

import (
	"context"
	"strings"

	"github.com/insightlab/research-assistant/internal/core/domain"
	"github.com/insightlab/research-assistant/internal/core/ports"
)

// Dispatcher picks the extractor for a document's MIME type, falling
// back to plain text for everything it does not recognize.
type Dispatcher struct {
	pdf      ports.TextExtractor
	fallback ports.TextExtractor
}

func NewDispatcher(pdf, fallback ports.TextExtractor) *Dispatcher {
	return &Dispatcher{pdf: pdf, fallback: fallback}
}

func (d *Dispatcher) Extract(ctx context.Context, doc *domain.Document) (string, error) {
	mime := strings.ToLower(strings.TrimSpace(doc.MimeType))
	if mime == "application/pdf" || strings.HasSuffix(strings.ToLower(doc.Name), ".pdf") {
		return d.pdf.Extract(ctx, doc)
	}
	return d.fallback.Extract(ctx, doc)
}
