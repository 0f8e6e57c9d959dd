package testsupport

import (
	"context"
	"testing"

	"crate/internal/config"
	"crate/internal/library"
	"crate/internal/trackstore"
)

// MustOpenStore opens a trackstore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *trackstore.Store {
	t.Helper()

	store, err := trackstore.Open(cfg)
	if err != nil {
		t.Fatalf("trackstore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// UpsertRow inserts a track row for tests using the provided store and
// returns its assigned identifier.
func UpsertRow(t testing.TB, store *trackstore.Store, row library.Row) int64 {
	t.Helper()

	id, err := store.Upsert(context.Background(), row)
	if err != nil {
		t.Fatalf("store.Upsert: %v", err)
	}
	return id
}
