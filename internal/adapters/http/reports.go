package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/insightlab/research-assistant/internal/core/domain"
)

func (rt *Router) handleReports(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		reports, err := rt.reports.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reports)
	case http.MethodPost:
		var req struct {
			Title   string                `json:"title"`
			Query   string                `json:"query"`
			Results []domain.SearchResult `json:"results"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}

		report, err := rt.reports.Create(r.Context(), req.Title, req.Query, req.Results)
		if err != nil {
			writeError(w, err)
			return
		}
		if rt.metrics != nil {
			rt.metrics.RecordCreditCharge(rt.service, "report")
		}
		writeJSON(w, http.StatusCreated, report)
	default:
		methodNotAllowed(w)
	}
}
