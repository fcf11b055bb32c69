package store

import "github.com/theirongolddev/finpulse/internal/model"

// Money columns are TEXT so decimal values round-trip exactly.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    id                   TEXT PRIMARY KEY,
    ts                   TEXT NOT NULL,
    amount               TEXT NOT NULL,
    type                 TEXT NOT NULL DEFAULT '',
    category             TEXT NOT NULL DEFAULT '',
    description          TEXT NOT NULL DEFAULT '',
    currency             TEXT NOT NULL DEFAULT '',
    source_file          TEXT
);

CREATE TABLE IF NOT EXISTS assets (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL,
    category             TEXT NOT NULL,
    current_value        TEXT NOT NULL,
    currency             TEXT NOT NULL DEFAULT '',
    source_file          TEXT
);

CREATE TABLE IF NOT EXISTS liabilities (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL,
    category             TEXT NOT NULL,
    remaining_amount     TEXT NOT NULL,
    interest_rate        TEXT,
    monthly_payment      TEXT,
    currency             TEXT NOT NULL DEFAULT '',
    source_file          TEXT
);

CREATE TABLE IF NOT EXISTS goals (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL,
    target_amount        TEXT NOT NULL,
    current_amount       TEXT NOT NULL,
    status               TEXT NOT NULL,
    source_file          TEXT
);

CREATE TABLE IF NOT EXISTS recurring_expenses (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL,
    amount               TEXT NOT NULL,
    frequency            TEXT NOT NULL,
    is_active            INTEGER NOT NULL DEFAULT 1,
    source_file          TEXT
);

CREATE TABLE IF NOT EXISTS badge_unlocks (
    badge_id             TEXT PRIMARY KEY,
    unlocked_at          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS import_files (
    file_path            TEXT PRIMARY KEY,
    mtime_ns             INTEGER NOT NULL,
    size_bytes           INTEGER NOT NULL,
    records              INTEGER NOT NULL DEFAULT 0,
    imported_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_ts ON transactions(ts);
`

// tables maps record kinds onto their table names.
var tables = map[model.RecordKind]string{
	model.KindTransaction: "transactions",
	model.KindAsset:       "assets",
	model.KindLiability:   "liabilities",
	model.KindGoal:        "goals",
	model.KindRecurring:   "recurring_expenses",
}
