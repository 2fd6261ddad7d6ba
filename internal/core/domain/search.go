package domain

type ResultType string

const (
	ResultTypeDocument ResultType = "document"
	ResultTypeLive     ResultType = "live"
)

// SearchResult is a single ranked, citable hit. Results are ephemeral:
// they exist only inside a search response unless wrapped into a Report.
// DocumentID and PageNumber are set for document results only.
type SearchResult struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Snippet    string     `json:"snippet"`
	Source     string     `json:"source"`
	Type       ResultType `json:"type"`
	Relevance  float64    `json:"relevance"`
	Citations  []string   `json:"citations"`
	DocumentID int64      `json:"document_id,omitempty"`
	PageNumber int        `json:"page_number,omitempty"`
}
