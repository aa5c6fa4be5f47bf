package httputil

import (
	"encoding/json"
	"net/http"
)

// successEnvelope wraps every success payload as {"result": ...}
type successEnvelope struct {
	Result any `json:"result"`
}

// errorEnvelope wraps every failure as {"error": "..."}
type errorEnvelope struct {
	Error string `json:"error"`
}

// RespondResult writes a success response with the payload wrapped in the
// {"result": ...} envelope. It marshals before writing headers so a failed
// encode can still produce a clean 500.
func RespondResult(w http.ResponseWriter, status int, result any) {
	payload, err := json.Marshal(successEnvelope{Result: result})
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondError writes a failure response with the message wrapped in the
// {"error": "..."} envelope.
func RespondError(w http.ResponseWriter, status int, message string) {
	payload, err := json.Marshal(errorEnvelope{Error: message})
	if err != nil {
		// Fallback to plain text if JSON encoding fails
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
