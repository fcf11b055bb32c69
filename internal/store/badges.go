package store

import (
	"context"
	"fmt"
	"time"
)

// BadgeUnlock is the first time a badge was observed as unlocked.
type BadgeUnlock struct {
	BadgeID    string
	UnlockedAt time.Time
}

// RecordBadges stores an unlock time for every id not seen before and returns
// the ids that are new. Already-unlocked badges keep their original time.
func (s *Store) RecordBadges(ctx context.Context, ids []string, at time.Time) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var fresh []string
	for _, id := range ids {
		res, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO badge_unlocks (badge_id, unlocked_at) VALUES (?, ?)",
			id, formatTime(at))
		if err != nil {
			return nil, fmt.Errorf("recording badge %s: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if n > 0 {
			fresh = append(fresh, id)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return fresh, nil
}

// ListBadges returns every recorded unlock, oldest first.
func (s *Store) ListBadges(ctx context.Context) ([]BadgeUnlock, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT badge_id, unlocked_at FROM badge_unlocks ORDER BY unlocked_at, badge_id")
	if err != nil {
		return nil, fmt.Errorf("listing badges: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []BadgeUnlock
	for rows.Next() {
		var b BadgeUnlock
		var at string
		if err := rows.Scan(&b.BadgeID, &at); err != nil {
			return nil, err
		}
		if b.UnlockedAt, err = parseTime(at); err != nil {
			return nil, fmt.Errorf("badge %s unlocked_at: %w", b.BadgeID, err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
