package response

import (
	"encoding/json"
	"net/http"
)

// APIResponse is the envelope every endpoint speaks: {success, message, ...}.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// JSON writes the payload as-is. Handlers build the map so endpoint-specific
// fields (userId, token, user) sit next to success/message at the top level.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes a bare success acknowledgment.
func OK(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, APIResponse{Success: true, Message: msg})
}

// Error writes a failure envelope.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, APIResponse{Success: false, Message: msg})
}
