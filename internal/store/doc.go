// Package store holds the whole spaced repetition state (decks, review
// ledger, streak, preferences) behind a single Store façade. Every
// mutating command runs under one mutex and snapshots the state to the
// configured SnapshotStore before returning.
package store
