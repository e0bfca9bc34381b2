// Package forms carries the response contract shared by every form module.
//
// Failed submissions answer HTTP 400 with the per-field error messages and
// the submitted data echoed back, so the client can re-populate the form.
// Successful submissions answer {"success": true}. Notification delivery
// problems never change the response.
package forms

import (
	"encoding/json"
	"net/http"
)

// Failure is the payload for a rejected submission.
type Failure struct {
	Errors map[string]string `json:"errors"`
	Data   any               `json:"data,omitempty"`
}

// Success is the payload for an accepted submission.
type Success struct {
	Success bool `json:"success"`
}

// Fail writes a 400 response pairing field errors with the echoed submission.
func Fail(w http.ResponseWriter, errs map[string]string, data any) {
	writeJSON(w, http.StatusBadRequest, Failure{Errors: errs, Data: data})
}

// FailField writes a 400 response carrying a single field error.
func FailField(w http.ResponseWriter, field, message string, data any) {
	Fail(w, map[string]string{field: message}, data)
}

// OK writes the success response.
func OK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, Success{Success: true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
