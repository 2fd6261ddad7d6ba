package httpadapter

import (
	"net/http"

	"github.com/insightlab/research-assistant/internal/core/domain"
)

// Ordered: ErrTemporary outranks ErrUpstream when both are in the
// chain, so retryable upstream failures surface as 503.
var errorStatus = []struct {
	kind   error
	status int
}{
	{domain.ErrInvalidInput, http.StatusBadRequest},
	{domain.ErrDocumentNotFound, http.StatusNotFound},
	{domain.ErrTemporary, http.StatusServiceUnavailable},
	{domain.ErrUpstream, http.StatusBadGateway},
}

func mapErrorToHTTPStatus(err error) int {
	for _, m := range errorStatus {
		if domain.IsKind(err, m.kind) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}
