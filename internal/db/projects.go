package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mfinley/taskwise/internal/models"
)

// CreateProject adds a new project. Returns ErrAlreadyExists if the
// name is taken.
func (db *DB) CreateProject(name string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	res, err := db.conn.Exec("INSERT INTO projects (name) VALUES (?)", name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("project %q: %w", name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("create project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	return &models.Project{ID: id, Name: name}, nil
}

// FindProjectByName looks up a project. Returns ErrNotFound when absent.
func (db *DB) FindProjectByName(name string) (*models.Project, error) {
	var p models.Project
	err := db.conn.QueryRow("SELECT id, name FROM projects WHERE name = ?", name).
		Scan(&p.ID, &p.Name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	return &p, nil
}

// ListProjects returns all projects sorted by name
func (db *DB) ListProjects() ([]models.Project, error) {
	rows, err := db.conn.Query("SELECT id, name FROM projects ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// FindOrCreateProject resolves a project name to its id, creating the
// row if the name is unseen.
func (db *DB) FindOrCreateProject(name string) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	id, err := findOrCreateProjectTx(tx, name)
	if err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

func findOrCreateProjectTx(tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM projects WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("find project: %w", err)
	}

	res, err := tx.Exec("INSERT INTO projects (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("create project %q: %w", name, err)
	}
	return res.LastInsertId()
}
