// Package student contains all HTTP handlers related to the Student resource.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// Each exported function accepts its dependency (the roster) and returns a
// handler with the exact signature the router needs:
//
//	router.HandleFunc("POST /api/students", student.New(store))
//
// New(store) is called ONCE at startup; the returned func runs on EVERY
// request. The handlers only translate HTTP to roster calls and roster
// errors to status codes. They never touch the roster's state directly.
package student

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aanand-mishra/student-roster/internal/export"
	"github.com/aanand-mishra/student-roster/internal/roster"
	"github.com/aanand-mishra/student-roster/internal/types"
	"github.com/aanand-mishra/student-roster/internal/utils/response"
)

// Roster is the set of store operations the handlers dispatch to.
// *roster.Store satisfies it.
type Roster interface {
	Create(in types.StudentInput) (types.Student, error)
	Update(id string, in types.StudentInput) (types.Student, error)
	Delete(id string) error
	FindByID(id string) (types.Student, bool)
	Filter(query string) []types.Student
	List() []types.Student
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/students
// Creates a new student from the JSON request body.
//
// Request body (JSON):
//
//	{ "name": "Asha Rao", "rollno": "101", "std": "10", "mobile": "9876543210" }
//
// Success response (201 Created): the stored record, including id and createdAt.
//
// Error responses:
//
//	400 Bad Request  — empty body, malformed JSON, or failed validation
//	409 Conflict     — roll number already taken
//	500 Internal     — storage error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(store Roster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		in, ok := decodeInput(w, r)
		if !ok {
			return
		}

		created, err := store.Create(in)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		slog.Info("student created", slog.String("id", created.ID))
		response.WriteJSON(w, http.StatusCreated, created)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /api/students/{id}
//
// Error responses:
//
//	404 Not Found — no student has that id
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(store Roster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("getting a student", slog.String("id", id))

		student, ok := store.FindByID(id)
		if !ok {
			writeStoreError(w, roster.ErrNotFound)
			return
		}

		response.WriteJSON(w, http.StatusOK, student)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /api/students and GET /api/students?q=<search>
//
// Without q (or with a blank q) every student is returned in roster order.
// With q, only students whose name or roll number contain q (ignoring case)
// or whose mobile contains q are returned, still in roster order.
//
// Returns an empty array [] (not null) when nothing matches.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(store Roster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		slog.Info("listing students", slog.String("q", q))

		response.WriteJSON(w, http.StatusOK, store.Filter(q))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PUT /api/students/{id}
// Replaces ALL editable fields of an existing student. The id, createdAt and
// position in the roster are kept; updatedAt is set.
//
// Error responses:
//
//	400 Bad Request  — empty body, malformed JSON, or failed validation
//	404 Not Found    — no student has that id
//	409 Conflict     — new roll number belongs to another student
//	500 Internal     — storage error
//
// ─────────────────────────────────────────────────────────────────────────────
func Update(store Roster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a student", slog.String("id", id))

		in, ok := decodeInput(w, r)
		if !ok {
			return
		}

		updated, err := store.Update(id, in)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		slog.Info("student updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /api/students/{id}
//
// Success response (200 OK):
//
//	{ "status": "deleted" }
//
// ─────────────────────────────────────────────────────────────────────────────
func Delete(store Roster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a student", slog.String("id", id))

		if err := store.Delete(id); err != nil {
			writeStoreError(w, err)
			return
		}

		slog.Info("student deleted", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Export handles GET /api/students/export
// Downloads the whole roster as Student_Database_<date>.xlsx.
//
// The workbook is rendered into a buffer first so a failure can still be
// reported as JSON instead of a truncated download.
//
// Error responses:
//
//	400 Bad Request — the roster is empty
//	500 Internal    — workbook could not be built
//
// ─────────────────────────────────────────────────────────────────────────────
func Export(store Roster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("exporting students")

		var buf bytes.Buffer
		if err := export.Write(&buf, store.List()); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, export.ErrEmptyRoster) {
				status = http.StatusBadRequest
			} else {
				slog.Error("error exporting students", slog.String("error", err.Error()))
			}
			response.WriteJSON(w, status, response.GeneralError(err))
			return
		}

		name := export.FileName(time.Now())
		w.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			slog.Error("error writing export", slog.String("error", err.Error()))
		}
	}
}

// decodeInput reads the JSON body into a StudentInput. On failure it writes
// the 400 response itself and reports ok == false.
func decodeInput(w http.ResponseWriter, r *http.Request) (types.StudentInput, bool) {
	var in types.StudentInput

	err := json.NewDecoder(r.Body).Decode(&in)
	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("request body is empty")))
		return in, false
	}
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return in, false
	}

	return in, true
}

// writeStoreError maps a roster error onto an HTTP status.
func writeStoreError(w http.ResponseWriter, err error) {
	var vErr *roster.ValidationError

	switch {
	case errors.As(err, &vErr):
		response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(vErr))
	case errors.Is(err, roster.ErrDuplicateRollNumber):
		response.WriteJSON(w, http.StatusConflict, response.GeneralError(err))
	case errors.Is(err, roster.ErrNotFound):
		response.WriteJSON(w, http.StatusNotFound, response.GeneralError(err))
	default:
		slog.Error("roster operation failed", slog.String("error", err.Error()))
		response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
	}
}

// Register mounts every student route on mux.
//
//	POST   /api/students          → create a new student
//	GET    /api/students?q=       → list or search students
//	GET    /api/students/export   → download the roster as .xlsx
//	GET    /api/students/{id}     → get one student by id
//	PUT    /api/students/{id}     → update a student
//	DELETE /api/students/{id}     → delete a student
func Register(mux *http.ServeMux, store Roster) {
	mux.HandleFunc("POST /api/students", New(store))
	mux.HandleFunc("GET /api/students", GetList(store))
	mux.HandleFunc("GET /api/students/export", Export(store))
	mux.HandleFunc("GET /api/students/{id}", GetByID(store))
	mux.HandleFunc("PUT /api/students/{id}", Update(store))
	mux.HandleFunc("DELETE /api/students/{id}", Delete(store))
}
