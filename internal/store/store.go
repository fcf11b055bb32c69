// Package store provides the SQLite-backed record store.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/theirongolddev/finpulse/internal/model"
)

// Fixed-width UTC layout so TEXT timestamps sort chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store holds finance records, badge unlocks and import bookkeeping.
type Store struct {
	db *sql.DB
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DefaultDir returns the platform-appropriate data directory.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "finpulse")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "finpulse")
}

// DefaultPath returns the full path to the default database.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "finpulse.db")
}

// Counts holds the number of rows per table.
type Counts struct {
	Transactions int
	Assets       int
	Liabilities  int
	Goals        int
	Recurring    int
	Badges       int
	Files        int
}

// Total returns the number of finance records, excluding bookkeeping rows.
func (c Counts) Total() int {
	return c.Transactions + c.Assets + c.Liabilities + c.Goals + c.Recurring
}

// Counts returns row counts for every table.
func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	targets := []struct {
		table string
		dst   *int
	}{
		{"transactions", &c.Transactions},
		{"assets", &c.Assets},
		{"liabilities", &c.Liabilities},
		{"goals", &c.Goals},
		{"recurring_expenses", &c.Recurring},
		{"badge_unlocks", &c.Badges},
		{"import_files", &c.Files},
	}
	for _, t := range targets {
		// Table names come from the fixed list above.
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.table).Scan(t.dst); err != nil {
			return Counts{}, fmt.Errorf("counting %s: %w", t.table, err)
		}
	}
	return c, nil
}

// DeleteRecord removes one record by kind and id.
func (s *Store) DeleteRecord(ctx context.Context, kind model.RecordKind, id string) error {
	table, ok := tables[kind]
	if !ok {
		return fmt.Errorf("%w: %q", model.ErrUnknownKind, kind)
	}
	res, err := s.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", kind, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, model.ErrNotFound)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
