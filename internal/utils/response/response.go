// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every handler in this application sends JSON back to the client (the
// spreadsheet export is the one exception). Rather than repeating the same
// three lines (set header, set status, encode JSON) in every handler, we
// centralise them here.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aanand-mishra/student-roster/internal/roster"
)

// ─────────────────────────────────────────────────────────────────────────────
// Response is the standard envelope returned for error cases.
//
// Success responses may return any JSON shape (a student, a list…).
// Error responses always look like:
//
//	{ "status": "error", "error": "field rollno is required" }
//
// ─────────────────────────────────────────────────────────────────────────────
type Response struct {
	Status string `json:"status"`          // "ok" or "error"
	Error  string `json:"error,omitempty"` // human-readable error detail
	Field  string `json:"field,omitempty"` // set for validation failures
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into our standard Response shape.
// Use this for unexpected errors (storage failures, decode errors, etc.)
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ValidationError converts a roster validation failure into a single
// human-readable Response naming the offending field.
//
// Example output:
//
//	{ "status": "error", "error": "field mobile must be exactly 10 digits", "field": "mobile" }
//
// ─────────────────────────────────────────────────────────────────────────────
func ValidationError(err *roster.ValidationError) Response {
	var msg string

	switch {
	case err.Tag == "required":
		msg = fmt.Sprintf("field %s is required", err.Field)
	case err.Field == "name" && err.Tag == "min":
		msg = "field name must be at least 2 characters"
	case err.Tag == "mobile":
		msg = "field mobile must be exactly 10 digits"
	default:
		msg = fmt.Sprintf("field %s is invalid", err.Field)
	}

	return Response{
		Status: StatusError,
		Error:  msg,
		Field:  err.Field,
	}
}
