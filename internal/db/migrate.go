package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// duplicates from re-runs are tolerated.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Work items and progress entries reference projects by code, deliberately
// without a foreign key: imported site data regularly carries codes with no
// matching project record, and that inconsistency is surfaced as a report
// warning rather than rejected at the schema.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		sub_code TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'upcoming',
		division TEXT NOT NULL DEFAULT '',
		currency TEXT NOT NULL DEFAULT '',
		contract_amount REAL NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS work_items (
		id TEXT PRIMARY KEY,
		project_code TEXT NOT NULL,
		project_full_code TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL,
		zone TEXT NOT NULL DEFAULT '',
		division TEXT NOT NULL DEFAULT '',
		unit TEXT NOT NULL DEFAULT '',
		total_units REAL NOT NULL DEFAULT 0 CHECK (total_units >= 0),
		planned_units REAL NOT NULL DEFAULT 0 CHECK (planned_units >= 0),
		actual_units REAL NOT NULL DEFAULT 0 CHECK (actual_units >= 0),
		rate REAL NOT NULL DEFAULT 0,
		total_value REAL NOT NULL DEFAULT 0,
		completed INTEGER NOT NULL DEFAULT 0,
		delayed INTEGER NOT NULL DEFAULT 0,
		deadline TEXT,
		planned_start TEXT,
		actual_start TEXT,
		planned_completion TEXT,
		actual_completion TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_items_project_code ON work_items(project_code)`,

	`CREATE TABLE IF NOT EXISTS progress_entries (
		id TEXT PRIMARY KEY,
		project_code TEXT NOT NULL,
		project_full_code TEXT NOT NULL DEFAULT '',
		activity_description TEXT NOT NULL,
		zone TEXT NOT NULL DEFAULT '',
		input_type TEXT NOT NULL,
		entry_date TEXT NOT NULL,
		quantity REAL NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_progress_entries_project_code ON progress_entries(project_code)`,
	`CREATE INDEX IF NOT EXISTS idx_progress_entries_date ON progress_entries(entry_date)`,
}
