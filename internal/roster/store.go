// Package roster is the sole authority over the student roster: an ordered,
// in-memory list of records mirrored to a storage.Storage after every
// successful mutation.
//
// Invariants held by Store at all times:
//   - no two records share a roll number;
//   - ids are unique and never reused;
//   - records keep their insertion order, updates never move them.
//
// Every operation is all-or-nothing. A failed call leaves the roster exactly
// as it found it, including when the storage write itself fails.
package roster

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aanand-mishra/student-roster/internal/storage"
	"github.com/aanand-mishra/student-roster/internal/types"
)

// Store owns the roster.
type Store struct {
	mu       sync.Mutex
	students []types.Student
	port     storage.Storage

	now   func() time.Time
	newID func() string
	log   *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source for CreatedAt and UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets the id source. The generator must never repeat.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New loads the roster snapshot from port and returns a Store that owns it.
// An absent or unreadable snapshot gives an empty roster; only an error from
// the port itself is returned.
func New(port storage.Storage, opts ...Option) (*Store, error) {
	s := &Store{
		port:  port,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	snapshot, ok, err := port.Load()
	if err != nil {
		return nil, fmt.Errorf("roster.New: load snapshot: %w", err)
	}
	if ok {
		s.students = decodeSnapshot(snapshot, s.log)
	} else {
		s.students = make([]types.Student, 0)
	}

	s.log.Info("roster loaded", slog.Int("students", len(s.students)))
	return s, nil
}

// Create validates in and appends a new record to the end of the roster.
func (s *Store) Create(in types.StudentInput) (types.Student, error) {
	in = normalize(in)
	if err := Validate(in); err != nil {
		return types.Student{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rollTaken(in.RollNumber, "") {
		return types.Student{}, ErrDuplicateRollNumber
	}

	student := types.Student{
		ID:         s.newID(),
		Name:       in.Name,
		RollNumber: in.RollNumber,
		Standard:   in.Standard,
		Mobile:     in.Mobile,
		CreatedAt:  s.now(),
	}

	next := append(slices.Clip(s.students), student)
	if err := s.commit(next); err != nil {
		return types.Student{}, err
	}

	s.log.Debug("student created",
		slog.String("id", student.ID),
		slog.String("rollno", student.RollNumber))
	return student, nil
}

// Update replaces the editable fields of the record with the given id,
// keeping its position, id and CreatedAt.
func (s *Store) Update(id string, in types.StudentInput) (types.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return types.Student{}, ErrNotFound
	}

	in = normalize(in)
	if err := Validate(in); err != nil {
		return types.Student{}, err
	}

	current := s.students[idx]
	if current.RollNumber != in.RollNumber && s.rollTaken(in.RollNumber, id) {
		return types.Student{}, ErrDuplicateRollNumber
	}

	updatedAt := s.now()
	updated := current
	updated.Name = in.Name
	updated.RollNumber = in.RollNumber
	updated.Standard = in.Standard
	updated.Mobile = in.Mobile
	updated.UpdatedAt = &updatedAt

	next := slices.Clone(s.students)
	next[idx] = updated
	if err := s.commit(next); err != nil {
		return types.Student{}, err
	}

	s.log.Debug("student updated", slog.String("id", id))
	return updated, nil
}

// Delete removes the record with the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}

	next := slices.Delete(slices.Clone(s.students), idx, idx+1)
	if err := s.commit(next); err != nil {
		return err
	}

	s.log.Debug("student deleted", slog.String("id", id))
	return nil
}

// FindByID returns the record with the given id.
func (s *Store) FindByID(id string) (types.Student, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return types.Student{}, false
	}
	return s.students[idx], true
}

// Filter returns, in roster order, every record whose name or roll number
// contains query case-insensitively, or whose mobile contains it verbatim.
// A blank query matches everything. The result is always a fresh slice.
func (s *Store) Filter(query string) []types.Student {
	q := strings.ToLower(strings.TrimSpace(query))

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Student, 0, len(s.students))
	for _, st := range s.students {
		if q == "" ||
			strings.Contains(strings.ToLower(st.Name), q) ||
			strings.Contains(strings.ToLower(st.RollNumber), q) ||
			strings.Contains(st.Mobile, q) {
			out = append(out, st)
		}
	}
	return out
}

// List returns a copy of the whole roster.
func (s *Store) List() []types.Student {
	return s.Filter("")
}

// Len reports the number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.students)
}

// commit persists next and, only if that succeeds, makes it the roster.
// Callers hold s.mu and must pass a slice that does not alias s.students.
func (s *Store) commit(next []types.Student) error {
	snapshot, err := EncodeSnapshot(next)
	if err != nil {
		return err
	}
	if err := s.port.Save(snapshot); err != nil {
		s.log.Error("failed to persist roster", slog.String("error", err.Error()))
		return fmt.Errorf("roster: save snapshot: %w", err)
	}
	s.students = next
	return nil
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.students, func(st types.Student) bool {
		return st.ID == id
	})
}

// rollTaken reports whether a record other than exceptID uses roll.
func (s *Store) rollTaken(roll, exceptID string) bool {
	return slices.ContainsFunc(s.students, func(st types.Student) bool {
		return st.RollNumber == roll && st.ID != exceptID
	})
}
