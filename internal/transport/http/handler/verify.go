package handler

import (
	"context"
	"net/http"

	"github.com/go-verify-api/internal/domain"
)

// tokenParams are the accepted query parameter names, in precedence order.
// The first non-empty one wins.
var tokenParams = []string{"token", "t", "reference", "ref", "id"}

// VerificationResolver resolves a raw token to a canonical status.
type VerificationResolver interface {
	Resolve(ctx context.Context, rawToken string) domain.VerificationResult
}

// VerifyHandler serves the public token verification endpoint.
type VerifyHandler struct {
	resolver VerificationResolver
}

func NewVerifyHandler(resolver VerificationResolver) *VerifyHandler {
	return &VerifyHandler{resolver: resolver}
}

// Resolve handles GET /v1/verify. 200 carries any found status, approved or
// not; 400 means the token was missing or unusable; 404 means the search
// exhausted every candidate.
func (h *VerifyHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var raw string
	for _, p := range tokenParams {
		if v := query.Get(p); v != "" {
			raw = v
			break
		}
	}

	res := h.resolver.Resolve(r.Context(), raw)

	if res.OK {
		writeJSON(w, http.StatusOK, VerifySuccessEnvelope{
			OK:               true,
			Status:           string(res.Status),
			Reference:        res.Reference,
			UsingServiceRole: res.UsingServiceRole,
		})
		return
	}

	code := http.StatusNotFound
	if res.Status == domain.StatusInvalid {
		code = http.StatusBadRequest
	}
	writeJSON(w, code, VerifyFailureEnvelope{
		OK:      false,
		Status:  string(res.Status),
		Reason:  res.Reason,
		Message: res.Message,
	})
}
