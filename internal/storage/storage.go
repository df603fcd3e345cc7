// Package storage defines the Storage interface — the persistence port the
// roster store mirrors itself to.
//
// WHY AN OPAQUE STRING?
// ─────────────────────
// The roster is never written piecemeal. After every successful mutation
// the store serialises the WHOLE roster and hands the text to Save, which
// overwrites whatever was there before. The backend therefore only needs to
// behave like a single slot in a key/value store; it never knows what a
// student is. The store owns the format, the backend owns the bytes.
//
//   - Switching backends = implement two methods, change one line in main.go.
//
//   - Writing tests = use storage/memory, no database file needed.
package storage

// Storage is the snapshot contract.
type Storage interface {
	// Load returns the previously saved snapshot. ok is false when nothing
	// has been saved yet; that is not an error.
	Load() (snapshot string, ok bool, err error)

	// Save overwrites the stored snapshot with the given text.
	Save(snapshot string) error
}
