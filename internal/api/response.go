package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// envelope is the uniform JSON shape of every API response.
type envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Count   *int     `json:"count,omitempty"`
}

// jsonResponse writes a JSON envelope with the given status code.
func jsonResponse(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// jsonData writes a success envelope carrying data.
func jsonData(w http.ResponseWriter, status int, message string, data any) {
	jsonResponse(w, status, envelope{Success: true, Message: message, Data: data})
}

// jsonList writes a success envelope carrying a list and its count.
func jsonList[T any](w http.ResponseWriter, message string, items []T) {
	if items == nil {
		items = []T{}
	}
	count := len(items)
	jsonResponse(w, http.StatusOK, envelope{
		Success: true,
		Message: message,
		Data:    items,
		Count:   &count,
	})
}

// jsonError writes a failure envelope with a single message.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, envelope{Success: false, Message: message})
}

// jsonValidationError writes a 400 failure envelope listing field problems.
func jsonValidationError(w http.ResponseWriter, errs []string) {
	jsonResponse(w, http.StatusBadRequest, envelope{
		Success: false,
		Message: "Validation error",
		Errors:  errs,
	})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
