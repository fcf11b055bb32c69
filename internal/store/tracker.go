package store

import (
	"context"
	"fmt"
	"time"

	"github.com/theirongolddev/finpulse/internal/model"
)

// FileInfo holds the tracked mtime and size for an imported file.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
	Records   int
}

// Unchanged reports whether the file on disk still matches what was imported.
func (fi FileInfo) Unchanged(mtimeNs, sizeBytes int64) bool {
	return fi.MtimeNs == mtimeNs && fi.SizeBytes == sizeBytes
}

// GetTrackedFiles returns a map of file_path -> FileInfo for all imported files.
func (s *Store) GetTrackedFiles(ctx context.Context) (map[string]FileInfo, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT file_path, mtime_ns, size_bytes, records FROM import_files")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]FileInfo)
	for rows.Next() {
		var path string
		var fi FileInfo
		if err := rows.Scan(&path, &fi.MtimeNs, &fi.SizeBytes, &fi.Records); err != nil {
			return nil, err
		}
		result[path] = fi
	}
	return result, rows.Err()
}

// TrackFile records a file as imported without touching its records.
func (s *Store) TrackFile(ctx context.Context, path string, fi FileInfo) error {
	return trackFile(ctx, s.db, path, fi)
}

func trackFile(ctx context.Context, db execer, path string, fi FileInfo) error {
	_, err := db.ExecContext(ctx, `INSERT OR REPLACE INTO import_files
		(file_path, mtime_ns, size_bytes, records, imported_at)
		VALUES (?, ?, ?, ?, ?)`,
		path, fi.MtimeNs, fi.SizeBytes, fi.Records, formatTime(time.Now()))
	return err
}

// SaveImport replaces every record previously imported from path with batch
// and updates the file tracker, all in one transaction. A record that fails
// validation aborts the whole file.
func (s *Store) SaveImport(ctx context.Context, path string, fi FileInfo, batch model.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE source_file = ?", path); err != nil {
			return fmt.Errorf("clearing %s from %s: %w", table, path, err)
		}
	}

	for _, t := range batch.Transactions {
		if _, err := insertTransaction(ctx, tx, t, path); err != nil {
			return fmt.Errorf("transaction %s: %w", t.ID, err)
		}
	}
	for _, a := range batch.Assets {
		if _, err := insertAsset(ctx, tx, a, path); err != nil {
			return fmt.Errorf("asset %s: %w", a.ID, err)
		}
	}
	for _, l := range batch.Liabilities {
		if _, err := insertLiability(ctx, tx, l, path); err != nil {
			return fmt.Errorf("liability %s: %w", l.ID, err)
		}
	}
	for _, g := range batch.Goals {
		if _, err := insertGoal(ctx, tx, g, path); err != nil {
			return fmt.Errorf("goal %s: %w", g.ID, err)
		}
	}
	for _, r := range batch.Recurring {
		if _, err := insertRecurring(ctx, tx, r, path); err != nil {
			return fmt.Errorf("recurring %s: %w", r.ID, err)
		}
	}

	if err := trackFile(ctx, tx, path, fi); err != nil {
		return fmt.Errorf("tracking %s: %w", path, err)
	}
	return tx.Commit()
}

// DeleteFileTracker removes a file tracking entry so the next import re-reads it.
func (s *Store) DeleteFileTracker(ctx context.Context, path string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM import_files WHERE file_path = ?", path)
	return err
}
