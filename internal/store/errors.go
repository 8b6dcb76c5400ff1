package store

import "errors"

// Store-specific error types
var (
	// ErrDeckNotFound indicates that a deck with the specified ID
	// does not exist in the store.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrCardNotFound indicates that a card with the specified ID
	// does not exist in the addressed deck.
	ErrCardNotFound = errors.New("card not found")

	// ErrInvalidImport indicates that an import payload is malformed:
	// unparseable, missing a required field, or carrying out-of-range
	// scheduling values. Import failures never mutate existing state.
	ErrInvalidImport = errors.New("invalid deck payload")

	// ErrSnapshotSave indicates that persisting the state snapshot
	// failed after a mutation was applied. The in-memory state remains
	// the source of truth; callers should surface the failure without
	// rolling anything back.
	ErrSnapshotSave = errors.New("failed to save state snapshot")

	// ErrSnapshotLoad indicates that the persisted state snapshot could
	// not be read or decoded at startup.
	ErrSnapshotLoad = errors.New("failed to load state snapshot")
)
