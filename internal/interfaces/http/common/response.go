package common

import (
	"encoding/json"
	"log"
	"net/http"
)

// APIResponse is the envelope every applications endpoint answers with.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger *log.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Printf("JSON エンコードに失敗: %v", err)
	}
}

// WriteSuccess writes a success envelope with optional data.
func WriteSuccess(logger *log.Logger, w http.ResponseWriter, status int, data any, message string) {
	WriteJSON(logger, w, status, APIResponse{Success: true, Data: data, Message: message})
}

// WriteFailure writes a failure envelope carrying a user-facing message.
func WriteFailure(logger *log.Logger, w http.ResponseWriter, status int, message string) {
	WriteJSON(logger, w, status, APIResponse{Success: false, Message: message})
}
