// Package httpadapter exposes the research assistant over JSON HTTP.
package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/insightlab/research-assistant/internal/core/ports"
	"github.com/insightlab/research-assistant/internal/observability/metrics"
)

type Router struct {
	service string

	ingestor ports.DocumentIngestor
	library  ports.DocumentLibrary
	search   ports.SearchService
	reports  ports.ReportService
	research ports.ResearchService
	billing  ports.BillingService

	metrics *metrics.ServerMetrics
	traffic TrafficConfig
}

func NewRouter(
	service string,
	ingestor ports.DocumentIngestor,
	library ports.DocumentLibrary,
	search ports.SearchService,
	reports ports.ReportService,
	research ports.ResearchService,
	billing ports.BillingService,
	serverMetrics *metrics.ServerMetrics,
	traffic TrafficConfig,
) *Router {
	return &Router{
		service:  service,
		ingestor: ingestor,
		library:  library,
		search:   search,
		reports:  reports,
		research: research,
		billing:  billing,
		metrics:  serverMetrics,
		traffic:  traffic,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/documents", rt.documents)
	mux.HandleFunc("/v1/documents/", rt.documentByID)
	mux.HandleFunc("/v1/search", rt.searchDocuments)
	mux.HandleFunc("/v1/reports", rt.handleReports)
	mux.HandleFunc("/v1/research", rt.askResearch)
	mux.HandleFunc("/v1/billing/credits", rt.credits)
	mux.HandleFunc("/v1/billing/history", rt.creditHistory)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = trafficControlMiddleware(handler, rt.traffic)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(rt.service, handler)
	}
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
}
