package domain

import "time"

type DocumentStatus string

const (
	StatusProcessing DocumentStatus = "processing"
	StatusProcessed  DocumentStatus = "processed"
)

// Document is the upload record tracked in the metadata store. The parsed
// content lives in the in-memory DocumentIndex as DocumentContent.
type Document struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	MimeType    string         `json:"mime_type"`
	SizeBytes   int64          `json:"size_bytes"`
	StoragePath string         `json:"storage_path,omitempty"`
	Status      DocumentStatus `json:"status"`
	PageCount   int            `json:"page_count,omitempty"`
	WordCount   int            `json:"word_count,omitempty"`
	UploadedAt  time.Time      `json:"uploaded_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ContentMetadata is the lightweight topical fingerprint computed at ingestion.
type ContentMetadata struct {
	PageCount int      `json:"page_count"`
	WordCount int      `json:"word_count"`
	KeyTerms  []string `json:"key_terms"`
}

// DocumentContent is the parsed, searchable form of a document. It is
// immutable once inserted into the index; chunk order never changes.
type DocumentContent struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Content  string          `json:"content"`
	Chunks   []string        `json:"chunks"`
	Metadata ContentMetadata `json:"metadata"`
}
