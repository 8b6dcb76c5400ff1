package store

// SnapshotStore is the persistence boundary consumed by the Store: a
// last-write-wins home for one State blob. The Store is agnostic to the
// storage medium behind it.
type SnapshotStore interface {
	// Load returns the persisted state, or (nil, nil) when no snapshot
	// has ever been saved.
	Load() (*State, error)

	// Save persists the given state, replacing any previous snapshot.
	Save(state *State) error

	// Close releases any resources held by the snapshot store.
	Close() error
}
