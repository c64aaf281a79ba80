package service

import (
	"testing"
	"time"

	"github.com/alexanderramin/provost/internal/store"
	"github.com/alexanderramin/provost/internal/testutil"
)

// setupServices wires a document and programme service over a fresh
// SQLite store with a short autosave delay.
func setupServices(t *testing.T) (DocumentService, ProgrammeService, *store.SQLiteStore, *store.Saver) {
	t.Helper()
	s := testutil.NewTestStore(t)
	saver := store.NewSaver(s, 10*time.Millisecond)
	return NewDocumentService(s, saver), NewProgrammeService(saver), s, saver
}
