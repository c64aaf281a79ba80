// Package store persists programme documents. Documents are saved
// wholesale as JSON snapshots in a SQLite database, with a bounded
// autosave history per document. Loads run older snapshots through the
// migrate chain before decoding.
package store

import (
	"context"
	"time"

	"github.com/alexanderramin/provost/internal/domain"
)

// DocumentInfo is the listing row for a stored document.
type DocumentInfo struct {
	ID            string
	Title         string
	SchemaVersion int
	UpdatedAt     time.Time
}

// Autosave is one historical snapshot of a document.
type Autosave struct {
	DocumentID string
	SavedAt    time.Time
	Body       []byte
}

// Store is the document persistence interface.
type Store interface {
	// Save writes the document snapshot and appends an autosave entry.
	Save(ctx context.Context, p *domain.Programme) error

	// Load reads, migrates and decodes a document.
	Load(ctx context.Context, id string) (*domain.Programme, error)

	// List returns all stored documents, most recently updated first.
	List(ctx context.Context) ([]DocumentInfo, error)

	// Delete removes a document and its autosave history.
	Delete(ctx context.Context, id string) error

	// History returns up to limit autosaves for a document, newest first.
	History(ctx context.Context, id string, limit int) ([]Autosave, error)

	Close() error
}
