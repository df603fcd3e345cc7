// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// WHY SQLite?
// ───────────
// SQLite stores everything in a single file on disk. There is no
// network, no separate server process, and no installation beyond the
// driver. The roster snapshot is a single text value, so the schema is a
// tiny key/value table — one row per storage key.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/student-roster/internal/config"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql,
// and the key under which the roster snapshot lives.
type SQLite struct {
	Db  *sql.DB
	key string
}

// New opens the SQLite database at cfg.StoragePath, creates the kv table
// if it does not already exist, and returns a ready-to-use *SQLite bound to
// cfg.StorageKey.
func New(cfg *config.Config) (*SQLite, error) {
	if cfg.StorageKey == "" {
		return nil, errors.New("sqlite.New: storage key is empty")
	}

	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Schema:
	//   key   — storage slot name, e.g. "students"
	//   value — the full serialised snapshot
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db, key: cfg.StorageKey}, nil
}

// Load reads the snapshot stored under the configured key.
// A missing row is reported as ok == false, not as an error.
func (s *SQLite) Load() (string, bool, error) {
	stmt, err := s.Db.Prepare("SELECT value FROM kv WHERE key = ? LIMIT 1")
	if err != nil {
		return "", false, fmt.Errorf("Load: prepare: %w", err)
	}
	defer stmt.Close()

	var value string
	if err := stmt.QueryRow(s.key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("Load: scan: %w", err)
	}

	return value, true, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Save overwrites the snapshot under the configured key.
//
// The upsert makes this a whole-value replace: the first save inserts the
// row, every later save swaps its value. There is never more than one row
// per key, and never a partially written roster.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) Save(snapshot string) error {
	stmt, err := s.Db.Prepare(
		"INSERT INTO kv (key, value) VALUES (?, ?) " +
			"ON CONFLICT(key) DO UPDATE SET value = excluded.value",
	)
	if err != nil {
		return fmt.Errorf("Save: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(s.key, snapshot); err != nil {
		return fmt.Errorf("Save: exec: %w", err)
	}

	return nil
}

// Close releases the underlying connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}
