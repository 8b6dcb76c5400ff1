// Package boltstore persists the state snapshot as a single JSON blob
// in a bbolt database file.
package boltstore

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/phrazzld/flashforge-api/internal/store"
)

var (
	bucketName  = []byte("state")
	snapshotKey = []byte("snapshot")
)

// Store implements store.SnapshotStore over a bbolt file. Writes are
// last-write-wins: each save replaces the previous snapshot wholesale.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the bbolt file at path and ensures
// the snapshot bucket exists.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create snapshot bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Load reads and decodes the persisted state, or returns (nil, nil)
// when no snapshot has been saved yet.
func (s *Store) Load() (*store.State, error) {
	var state *store.State
	err := s.db.View(func(tx *bolt.Tx) error {
		encoded := tx.Bucket(bucketName).Get(snapshotKey)
		if encoded == nil {
			return nil
		}
		state = &store.State{}
		if err := json.Unmarshal(encoded, state); err != nil {
			return fmt.Errorf("failed to decode snapshot: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// Save encodes the state and replaces the stored snapshot.
func (s *Store) Save(state *store.State) error {
	encoded, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put(snapshotKey, encoded)
	})
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}
