package httpadapter

import (
	"encoding/json"
	"net/http"
)

func (rt *Router) credits(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		balance, err := rt.billing.Balance(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"credits": balance})
	case http.MethodPost:
		var req struct {
			Credits     int     `json:"credits"`
			AmountUSD   float64 `json:"amount_usd"`
			Description string  `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}

		balance, err := rt.billing.Purchase(r.Context(), req.Credits, req.AmountUSD, req.Description)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"credits": balance})
	default:
		methodNotAllowed(w)
	}
}

func (rt *Router) creditHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	history, err := rt.billing.History(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}
