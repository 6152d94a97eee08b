package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/sitepace/internal/domain"
)

// progressEntryColumns is the canonical SELECT column list for progress_entries.
const progressEntryColumns = `id, project_code, project_full_code,
		activity_description, zone, input_type, entry_date, quantity, created_at`

// SQLiteProgressEntryRepo implements ProgressEntryRepo using a SQLite database.
type SQLiteProgressEntryRepo struct {
	db *sql.DB
}

// NewSQLiteProgressEntryRepo creates a new SQLiteProgressEntryRepo.
func NewSQLiteProgressEntryRepo(db *sql.DB) *SQLiteProgressEntryRepo {
	return &SQLiteProgressEntryRepo{db: db}
}

const insertProgressEntry = `INSERT INTO progress_entries (` + progressEntryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (r *SQLiteProgressEntryRepo) Create(ctx context.Context, e *domain.ProgressEntry) error {
	if _, err := r.db.ExecContext(ctx, insertProgressEntry, entryArgs(e)...); err != nil {
		return fmt.Errorf("inserting progress entry: %w", err)
	}
	return nil
}

// CreateBatch inserts all entries in one transaction. Import files routinely
// carry thousands of rows; one transaction keeps that fast and atomic.
func (r *SQLiteProgressEntryRepo) CreateBatch(ctx context.Context, entries []*domain.ProgressEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting batch insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertProgressEntry)
	if err != nil {
		return fmt.Errorf("preparing batch insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, entryArgs(e)...); err != nil {
			return fmt.Errorf("inserting progress entry %s: %w", e.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing batch insert: %w", err)
	}
	return nil
}

func entryArgs(e *domain.ProgressEntry) []any {
	return []any{
		e.ID,
		e.ProjectCode,
		e.ProjectFullCode,
		e.ActivityDescription,
		e.Zone,
		e.InputType,
		e.Date.Format(dateLayout),
		e.Quantity,
		e.CreatedAt.Format(time.RFC3339),
	}
}

func (r *SQLiteProgressEntryRepo) ListByProjectCode(ctx context.Context, code string) ([]*domain.ProgressEntry, error) {
	query := `SELECT ` + progressEntryColumns + ` FROM progress_entries
		WHERE project_code = ? COLLATE NOCASE ORDER BY entry_date, created_at, id`
	rows, err := r.db.QueryContext(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("listing progress entries by project: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteProgressEntryRepo) List(ctx context.Context) ([]*domain.ProgressEntry, error) {
	query := `SELECT ` + progressEntryColumns + ` FROM progress_entries
		ORDER BY entry_date, created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing progress entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteProgressEntryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM progress_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting progress entry: %w", err)
	}
	return requireAffected(res)
}

func (r *SQLiteProgressEntryRepo) scanEntries(rows *sql.Rows) ([]*domain.ProgressEntry, error) {
	var entries []*domain.ProgressEntry
	for rows.Next() {
		var e domain.ProgressEntry
		var entryDate, createdAt string
		err := rows.Scan(
			&e.ID,
			&e.ProjectCode,
			&e.ProjectFullCode,
			&e.ActivityDescription,
			&e.Zone,
			&e.InputType,
			&entryDate,
			&e.Quantity,
			&createdAt,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("scanning progress entry: %w", err)
		}
		e.Date, _ = time.Parse(dateLayout, entryDate)
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
