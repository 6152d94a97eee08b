package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/sitepace/internal/domain"
)

// workItemColumns is the canonical SELECT column list for work_items.
const workItemColumns = `id, project_code, project_full_code, description, zone, division, unit,
		total_units, planned_units, actual_units, rate, total_value,
		completed, delayed,
		deadline, planned_start, actual_start, planned_completion, actual_completion,
		created_at, updated_at`

// SQLiteWorkItemRepo implements WorkItemRepo using a SQLite database.
type SQLiteWorkItemRepo struct {
	db *sql.DB
}

// NewSQLiteWorkItemRepo creates a new SQLiteWorkItemRepo.
func NewSQLiteWorkItemRepo(db *sql.DB) *SQLiteWorkItemRepo {
	return &SQLiteWorkItemRepo{db: db}
}

func (r *SQLiteWorkItemRepo) Create(ctx context.Context, w *domain.WorkItem) error {
	query := `INSERT INTO work_items (` + workItemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.ProjectCode,
		w.ProjectFullCode,
		w.Description,
		w.Zone,
		w.Division,
		w.Unit,
		w.TotalUnits,
		w.PlannedUnits,
		w.ActualUnits,
		w.Rate,
		w.TotalValue,
		boolToInt(w.Completed),
		boolToInt(w.Delayed),
		nullableTimeToString(w.Deadline, dateLayout),
		nullableTimeToString(w.PlannedStart, dateLayout),
		nullableTimeToString(w.ActualStart, dateLayout),
		nullableTimeToString(w.PlannedCompletion, dateLayout),
		nullableTimeToString(w.ActualCompletion, dateLayout),
		w.CreatedAt.Format(time.RFC3339),
		w.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting work item: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items WHERE id = ?`
	return r.scanWorkItem(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteWorkItemRepo) ListByProjectCode(ctx context.Context, code string) ([]*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items
		WHERE project_code = ? COLLATE NOCASE ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("listing work items by project: %w", err)
	}
	defer rows.Close()
	return r.scanWorkItems(rows)
}

func (r *SQLiteWorkItemRepo) List(ctx context.Context) ([]*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items ORDER BY project_code, created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing work items: %w", err)
	}
	defer rows.Close()
	return r.scanWorkItems(rows)
}

func (r *SQLiteWorkItemRepo) Update(ctx context.Context, w *domain.WorkItem) error {
	query := `UPDATE work_items SET project_code = ?, project_full_code = ?,
		description = ?, zone = ?, division = ?, unit = ?,
		total_units = ?, planned_units = ?, actual_units = ?, rate = ?, total_value = ?,
		completed = ?, delayed = ?,
		deadline = ?, planned_start = ?, actual_start = ?,
		planned_completion = ?, actual_completion = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		w.ProjectCode,
		w.ProjectFullCode,
		w.Description,
		w.Zone,
		w.Division,
		w.Unit,
		w.TotalUnits,
		w.PlannedUnits,
		w.ActualUnits,
		w.Rate,
		w.TotalValue,
		boolToInt(w.Completed),
		boolToInt(w.Delayed),
		nullableTimeToString(w.Deadline, dateLayout),
		nullableTimeToString(w.PlannedStart, dateLayout),
		nullableTimeToString(w.ActualStart, dateLayout),
		nullableTimeToString(w.PlannedCompletion, dateLayout),
		nullableTimeToString(w.ActualCompletion, dateLayout),
		time.Now().UTC().Format(time.RFC3339),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating work item: %w", err)
	}
	return requireAffected(res)
}

func (r *SQLiteWorkItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM work_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting work item: %w", err)
	}
	return requireAffected(res)
}

func (r *SQLiteWorkItemRepo) scanWorkItem(row rowScanner) (*domain.WorkItem, error) {
	var w domain.WorkItem
	var completed, delayed int
	var deadline, plannedStart, actualStart, plannedCompletion, actualCompletion sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(
		&w.ID,
		&w.ProjectCode,
		&w.ProjectFullCode,
		&w.Description,
		&w.Zone,
		&w.Division,
		&w.Unit,
		&w.TotalUnits,
		&w.PlannedUnits,
		&w.ActualUnits,
		&w.Rate,
		&w.TotalValue,
		&completed,
		&delayed,
		&deadline,
		&plannedStart,
		&actualStart,
		&plannedCompletion,
		&actualCompletion,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning work item: %w", err)
	}
	w.Completed = intToBool(completed)
	w.Delayed = intToBool(delayed)
	w.Deadline = parseNullableTime(deadline, dateLayout)
	w.PlannedStart = parseNullableTime(plannedStart, dateLayout)
	w.ActualStart = parseNullableTime(actualStart, dateLayout)
	w.PlannedCompletion = parseNullableTime(plannedCompletion, dateLayout)
	w.ActualCompletion = parseNullableTime(actualCompletion, dateLayout)
	w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	w.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &w, nil
}

func (r *SQLiteWorkItemRepo) scanWorkItems(rows *sql.Rows) ([]*domain.WorkItem, error) {
	var items []*domain.WorkItem
	for rows.Next() {
		w, err := r.scanWorkItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}
