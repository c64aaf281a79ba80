package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/provost/internal/domain"
	"github.com/alexanderramin/provost/internal/migrate"
	_ "modernc.org/sqlite"
)

// autosaveKeep bounds the per-document autosave history.
const autosaveKeep = 20

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		id             TEXT PRIMARY KEY,
		title          TEXT NOT NULL DEFAULT '',
		schema_version INTEGER NOT NULL,
		body_json      TEXT NOT NULL,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS autosaves (
		document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
		saved_at    TEXT NOT NULL,
		body_json   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_autosaves_doc ON autosaves(document_id, saved_at)`,
}

// ErrNotFound is returned when a document ID is unknown.
var ErrNotFound = errors.New("document not found")

// SQLiteStore implements Store on a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (or creates) the store at the given path. ":memory:"
// yields an in-memory store for tests. WAL mode and foreign keys are
// enabled and schema migrations run on open.
func Open(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Save(ctx context.Context, p *domain.Programme) error {
	p.UpdatedAt = time.Now().UTC()
	p.SchemaVersion = domain.CurrentSchemaVersion

	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting save transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	now := p.UpdatedAt.Format(time.RFC3339Nano)
	_, err = tx.ExecContext(ctx, `INSERT INTO documents (id, title, schema_version, body_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			schema_version = excluded.schema_version,
			body_json = excluded.body_json,
			updated_at = excluded.updated_at`,
		p.ID, p.Title, p.SchemaVersion, string(body), p.CreatedAt.Format(time.RFC3339Nano), now)
	if err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO autosaves (document_id, saved_at, body_json) VALUES (?, ?, ?)`,
		p.ID, now, string(body)); err != nil {
		return fmt.Errorf("recording autosave: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM autosaves WHERE document_id = ? AND rowid NOT IN (
			SELECT rowid FROM autosaves WHERE document_id = ? ORDER BY saved_at DESC, rowid DESC LIMIT ?
		)`, p.ID, p.ID, autosaveKeep); err != nil {
		return fmt.Errorf("pruning autosaves: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}
	committed = true
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, id string) (*domain.Programme, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body_json FROM documents WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return DecodeDocument([]byte(body))
}

func (s *SQLiteStore) List(ctx context.Context) ([]DocumentInfo, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, schema_version, updated_at
		FROM documents ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var out []DocumentInfo
	for rows.Next() {
		var info DocumentInfo
		var updated string
		if err := rows.Scan(&info.ID, &info.Title, &info.SchemaVersion, &updated); err != nil {
			return nil, fmt.Errorf("scanning document row: %w", err)
		}
		info.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
		out = append(out, info)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) History(ctx context.Context, id string, limit int) ([]Autosave, error) {
	if limit <= 0 {
		limit = autosaveKeep
	}
	rows, err := s.db.QueryContext(ctx, `SELECT document_id, saved_at, body_json
		FROM autosaves WHERE document_id = ?
		ORDER BY saved_at DESC, rowid DESC LIMIT ?`, id, limit)
	if err != nil {
		return nil, fmt.Errorf("reading autosave history: %w", err)
	}
	defer rows.Close()

	var out []Autosave
	for rows.Next() {
		var a Autosave
		var saved, body string
		if err := rows.Scan(&a.DocumentID, &saved, &body); err != nil {
			return nil, fmt.Errorf("scanning autosave row: %w", err)
		}
		a.SavedAt, _ = time.Parse(time.RFC3339Nano, saved)
		a.Body = []byte(body)
		out = append(out, a)
	}
	return out, rows.Err()
}

// DecodeDocument migrates and decodes a raw document snapshot.
func DecodeDocument(body []byte) (*domain.Programme, error) {
	var raw migrate.Doc
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	raw, err := migrate.Upgrade(raw)
	if err != nil {
		return nil, fmt.Errorf("upgrading document: %w", err)
	}
	upgraded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("re-encoding document: %w", err)
	}
	var p domain.Programme
	if err := json.Unmarshal(upgraded, &p); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return &p, nil
}
