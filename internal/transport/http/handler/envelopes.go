package handler

import (
	"encoding/json"
	"net/http"
)

// MessageEnvelope is the generic response wrapper for non-verify endpoints.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// VerifySuccessEnvelope is the wire shape for a resolved token.
type VerifySuccessEnvelope struct {
	OK               bool   `json:"ok"`
	Status           string `json:"status"`
	Reference        string `json:"reference,omitempty"`
	UsingServiceRole bool   `json:"usingServiceRole"`
}

// VerifyFailureEnvelope is the wire shape for an invalid token or an
// exhausted search. Reason and message come from a closed set; store error
// text never appears here.
type VerifyFailureEnvelope struct {
	OK      bool   `json:"ok"`
	Status  string `json:"status"`
	Reason  string `json:"reason"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}
