package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope middleware uses when it has to answer for a
// handler (rate limit, panic recovery). Handler-level responses live in
// internal/http; the shapes match.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorResponseBody `json:"error"`
	Meta    interface{}       `json:"meta,omitempty"`
}

type ErrorResponseBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSONError writes an error envelope, attaching the request ID as meta when
// one is set on the context.
func JSONError(w http.ResponseWriter, r *http.Request, statusCode int, code string, message string) {
	resp := ErrorResponse{
		Success: false,
		Error: ErrorResponseBody{
			Code:    code,
			Message: message,
		},
	}
	if requestID := RequestIDFrom(r); requestID != "" {
		resp.Meta = map[string]interface{}{"request_id": requestID}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}
