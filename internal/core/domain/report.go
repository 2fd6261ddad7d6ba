package domain

import "time"

type ReportStatus string

const (
	ReportStatusProcessing ReportStatus = "processing"
	ReportStatusCompleted  ReportStatus = "completed"
)

// Report bundles a query with the results the user chose to keep.
type Report struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Query       string         `json:"query"`
	Results     []SearchResult `json:"results"`
	GeneratedAt time.Time      `json:"generated_at"`
	Status      ReportStatus   `json:"status"`
}
