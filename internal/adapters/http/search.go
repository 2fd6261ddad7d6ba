package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

func (rt *Router) searchDocuments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req struct {
		Query       string  `json:"query"`
		DocumentIDs []int64 `json:"document_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query is required"})
		return
	}

	start := time.Now()
	results, err := rt.search.Search(r.Context(), req.Query, req.DocumentIDs)
	if rt.metrics != nil {
		rt.metrics.RecordSearch(rt.service, len(results), time.Since(start), err)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	if rt.metrics != nil {
		rt.metrics.RecordCreditCharge(rt.service, "search")
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (rt *Router) askResearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req struct {
		Query      string `json:"query"`
		DocumentID int64  `json:"document_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	result, err := rt.research.Ask(r.Context(), req.Query, req.DocumentID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
