package testsupport

import (
	"path/filepath"
	"testing"

	"reelscore/internal/runstore"
)

// MustOpenStore opens a runstore.Store on a temp database and registers cleanup.
func MustOpenStore(t testing.TB) *runstore.Store {
	t.Helper()

	store, err := runstore.OpenPath(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("runstore.OpenPath: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
