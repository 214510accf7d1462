package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mfinley/taskwise/internal/models"
)

// CreateContext adds a new context. Returns ErrAlreadyExists if the
// name is taken.
func (db *DB) CreateContext(name string) (*models.Context, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("context name is required")
	}

	res, err := db.conn.Exec("INSERT INTO contexts (name) VALUES (?)", name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("context %q: %w", name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("create context: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create context: %w", err)
	}

	return &models.Context{ID: id, Name: name}, nil
}

// FindContextByName looks up a context. Returns ErrNotFound when absent.
func (db *DB) FindContextByName(name string) (*models.Context, error) {
	var c models.Context
	err := db.conn.QueryRow("SELECT id, name FROM contexts WHERE name = ?", name).
		Scan(&c.ID, &c.Name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("context %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find context: %w", err)
	}
	return &c, nil
}

// ListContexts returns all contexts sorted by name
func (db *DB) ListContexts() ([]models.Context, error) {
	rows, err := db.conn.Query("SELECT id, name FROM contexts ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list contexts: %w", err)
	}
	defer rows.Close()

	var contexts []models.Context
	for rows.Next() {
		var c models.Context
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan context: %w", err)
		}
		contexts = append(contexts, c)
	}
	return contexts, rows.Err()
}

// FindOrCreateContext resolves a context name to its id, creating the
// row if the name is unseen. Auto-vivification lives here, by name,
// so task writes never reject an unknown context.
func (db *DB) FindOrCreateContext(name string) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	id, err := findOrCreateContextTx(tx, name)
	if err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

func findOrCreateContextTx(tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM contexts WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("find context: %w", err)
	}

	res, err := tx.Exec("INSERT INTO contexts (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("create context %q: %w", name, err)
	}
	return res.LastInsertId()
}
