// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal keeps an append-only SQLite log of successful lookups.
// The journal is never consulted to answer a request.
package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/smart-summary/pkg/types"
)

const defaultLimit = 20

// Entry is one journaled lookup.
type Entry struct {
	ID        string    `json:"id" yaml:"id"`
	RequestID string    `json:"request_id,omitempty" yaml:"request_id,omitempty"`
	Term      string    `json:"term" yaml:"term"`
	Language  string    `json:"language" yaml:"language"`
	QID       string    `json:"qid" yaml:"qid"`
	Label     string    `json:"label" yaml:"label"`
	SiteTitle string    `json:"site_title,omitempty" yaml:"site_title,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// NewEntry describes the lookup of term that produced s.
func NewEntry(requestID, term string, s *types.Summary) Entry {
	e := Entry{
		RequestID: requestID,
		Term:      term,
		Language:  s.Language,
		QID:       s.QID,
		Label:     s.Label,
	}
	if s.SiteTitle != nil {
		e.SiteTitle = *s.SiteTitle
	}
	return e
}

// Store manages the journal database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the journal database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS lookups (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			request_id TEXT,
			term TEXT NOT NULL,
			language TEXT NOT NULL,
			qid TEXT NOT NULL,
			label TEXT,
			site_title TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lookups_qid ON lookups(qid)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends e. Missing ID and CreatedAt are filled in.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO lookups (id, request_id, term, language, qid, label, site_title, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.RequestID, e.Term, e.Language, e.QID, e.Label, e.SiteTitle,
		e.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording lookup %s: %w", e.ID, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. A non-positive limit
// selects the default of 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.query(ctx, `SELECT id, request_id, term, language, qid, label, site_title, created_at
		FROM lookups ORDER BY rowid DESC LIMIT ?`, limit)
}

// All returns every entry, oldest first.
func (s *Store) All(ctx context.Context) ([]Entry, error) {
	return s.query(ctx, `SELECT id, request_id, term, language, qid, label, site_title, created_at
		FROM lookups ORDER BY rowid ASC`)
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                           Entry
			requestID, label, siteTitle sql.NullString
			created                     string
		)
		if err := rows.Scan(&e.ID, &requestID, &e.Term, &e.Language, &e.QID, &label, &siteTitle, &created); err != nil {
			return nil, fmt.Errorf("scanning journal row: %w", err)
		}
		e.RequestID = requestID.String
		e.Label = label.String
		e.SiteTitle = siteTitle.String
		if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Export writes every entry to w as "yaml" or "json".
func (s *Store) Export(ctx context.Context, w io.Writer, format string) error {
	entries, err := s.All(ctx)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []Entry{}
	}

	switch format {
	case "yaml", "":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}
