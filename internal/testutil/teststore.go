package testutil

import (
	"path/filepath"
	"testing"

	"github.com/alexanderramin/provost/internal/store"
)

// NewTestStore opens a SQLite store in the test's temp directory with
// all migrations applied. The store is closed when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "provost.db"))
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})
	return s
}
