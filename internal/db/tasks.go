package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mfinley/taskwise/internal/models"
)

const taskSelect = `
SELECT t.id, t.description, t.priority, t.due_date_time,
       t.context_id, t.project_id, c.name, p.name,
       t.created_at, t.completed
FROM tasks t
LEFT JOIN contexts c ON t.context_id = c.id
LEFT JOIN projects p ON t.project_id = p.id`

// AddTask inserts a task, resolving context/project names to ids and
// auto-creating them when unseen. Returns the new row joined with the
// resolved names.
func (db *DB) AddTask(description string, priority *models.Priority, dueDateTime, contextName, projectName string) (*models.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("task description is required")
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var contextID, projectID *int64
	if contextName != "" {
		id, err := findOrCreateContextTx(tx, contextName)
		if err != nil {
			return nil, err
		}
		contextID = &id
	}
	if projectName != "" {
		id, err := findOrCreateProjectTx(tx, projectName)
		if err != nil {
			return nil, err
		}
		projectID = &id
	}

	var due *string
	if dueDateTime != "" {
		due = &dueDateTime
	}

	createdAt := time.Now().Format(models.TimeFormat)
	res, err := tx.Exec(`
		INSERT INTO tasks (description, priority, due_date_time, context_id, project_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		description, priority, due, contextID, projectID, createdAt)
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}

	return db.GetTask(id)
}

// GetTask returns a task by id joined with its context/project names.
// Returns ErrNotFound when absent.
func (db *DB) GetTask(id int64) (*models.Task, error) {
	row := db.conn.QueryRow(taskSelect+" WHERE t.id = ?", id)
	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// ListTasks returns tasks matching the filter. Filters compose with
// AND. Ordering: due date ascending with nulls last, then priority
// high > medium > low > none, then id.
func (db *DB) ListTasks(filter models.TaskFilter) ([]models.Task, error) {
	query := taskSelect + " WHERE 1=1"
	var params []any

	// Default visibility excludes completed tasks
	if !filter.All && !filter.CompletedOnly {
		query += " AND t.completed = 0"
	}
	if filter.CompletedOnly {
		query += " AND t.completed = 1"
	}
	if filter.Priority != "" {
		query += " AND t.priority = ?"
		params = append(params, filter.Priority)
	}
	if filter.DueStart != "" && filter.DueEnd != "" {
		query += " AND t.due_date_time BETWEEN ? AND ?"
		params = append(params, filter.DueStart, filter.DueEnd)
	} else if filter.DueStart != "" {
		query += " AND t.due_date_time >= ?"
		params = append(params, filter.DueStart)
	} else if filter.DueEnd != "" {
		query += " AND t.due_date_time <= ?"
		params = append(params, filter.DueEnd)
	}
	if filter.ContextName != "" {
		query += " AND c.name = ?"
		params = append(params, filter.ContextName)
	}
	if filter.ProjectName != "" {
		query += " AND p.name = ?"
		params = append(params, filter.ProjectName)
	}
	if filter.OverdueOnly {
		// Stored timestamps are fixed-width zero-padded, so the
		// string comparison is chronological.
		now := time.Now().Format(models.TimeFormat)
		query += " AND t.due_date_time < ? AND t.completed = 0"
		params = append(params, now)
	}

	query += `
	ORDER BY t.due_date_time ASC NULLS LAST,
	         CASE t.priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 WHEN 'low' THEN 2 ELSE 3 END,
	         t.id ASC`

	rows, err := db.conn.Query(query, params...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

// MarkTaskDone sets completed on a task. Idempotent: marking an
// already-completed task succeeds. Returns ErrNotFound for unknown ids.
func (db *DB) MarkTaskDone(id int64) error {
	res, err := db.conn.Exec("UPDATE tasks SET completed = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("mark done: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark done: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return nil
}

// EditTask applies a partial update. Only supplied fields change; an
// explicit empty context/project name clears the association, and an
// unseen non-empty name is auto-created. The whole edit runs in one
// transaction and rolls back on any failure.
func (db *DB) EditTask(id int64, upd models.TaskUpdate) (*models.Task, error) {
	if upd.Empty() {
		return nil, ErrNoUpdates
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var sets []string
	var params []any

	if upd.Description != nil {
		sets = append(sets, "description = ?")
		params = append(params, *upd.Description)
	}
	if upd.Priority != nil {
		sets = append(sets, "priority = ?")
		params = append(params, *upd.Priority)
	}
	if upd.DueDateTime != nil {
		sets = append(sets, "due_date_time = ?")
		params = append(params, *upd.DueDateTime)
	}
	if upd.ContextName != nil {
		var contextID *int64
		if *upd.ContextName != "" {
			cid, err := findOrCreateContextTx(tx, *upd.ContextName)
			if err != nil {
				return nil, err
			}
			contextID = &cid
		}
		sets = append(sets, "context_id = ?")
		params = append(params, contextID)
	}
	if upd.ProjectName != nil {
		var projectID *int64
		if *upd.ProjectName != "" {
			pid, err := findOrCreateProjectTx(tx, *upd.ProjectName)
			if err != nil {
				return nil, err
			}
			projectID = &pid
		}
		sets = append(sets, "project_id = ?")
		params = append(params, projectID)
	}

	params = append(params, id)
	res, err := tx.Exec("UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", params...)
	if err != nil {
		return nil, fmt.Errorf("edit task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("edit task: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("edit task: %w", err)
	}

	return db.GetTask(id)
}

// DeleteTask removes a task. Hard delete, no cascade to contexts or
// projects. Returns ErrNotFound for unknown ids.
func (db *DB) DeleteTask(id int64) error {
	res, err := db.conn.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var t models.Task
	var priority, due, contextName, projectName sql.NullString
	var contextID, projectID sql.NullInt64
	var createdAt string

	err := row.Scan(&t.ID, &t.Description, &priority, &due,
		&contextID, &projectID, &contextName, &projectName,
		&createdAt, &t.Completed)
	if err != nil {
		return nil, err
	}

	if priority.Valid {
		p := models.Priority(priority.String)
		t.Priority = &p
	}
	if due.Valid {
		t.DueDateTime = &due.String
	}
	if contextID.Valid {
		t.ContextID = &contextID.Int64
	}
	if projectID.Valid {
		t.ProjectID = &projectID.Int64
	}
	if contextName.Valid {
		t.ContextName = &contextName.String
	}
	if projectName.Valid {
		t.ProjectName = &projectName.String
	}
	if ts, err := time.ParseInLocation(models.TimeFormat, createdAt, time.Local); err == nil {
		t.CreatedAt = ts
	}

	return &t, nil
}
