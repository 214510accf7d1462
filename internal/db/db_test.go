package db

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	dbPath := filepath.Join(dir, "tasks.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file not created")
	}
}

func TestOpenIdempotent(t *testing.T) {
	dir := t.TempDir()

	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := db.CreateContext("work"); err != nil {
		t.Fatalf("CreateContext failed: %v", err)
	}
	db.Close()

	// Reopening must not wipe existing rows
	db, err = Open(dir)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer db.Close()

	if _, err := db.FindContextByName("work"); err != nil {
		t.Errorf("context lost across reopen: %v", err)
	}
}

func TestCreateAndFindContext(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	created, err := db.CreateContext("work")
	if err != nil {
		t.Fatalf("CreateContext failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("Context ID not set")
	}

	found, err := db.FindContextByName("work")
	if err != nil {
		t.Fatalf("FindContextByName failed: %v", err)
	}
	if found.Name != "work" || found.ID != created.ID {
		t.Errorf("Found context mismatch: got %+v, want %+v", found, created)
	}
}

func TestCreateContextDuplicate(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	first, err := db.CreateContext("work")
	if err != nil {
		t.Fatalf("CreateContext failed: %v", err)
	}

	_, err = db.CreateContext("work")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got %v", err)
	}

	// Original row unchanged
	found, err := db.FindContextByName("work")
	if err != nil {
		t.Fatalf("FindContextByName failed: %v", err)
	}
	if found.ID != first.ID {
		t.Errorf("Original row changed: got id %d, want %d", found.ID, first.ID)
	}
}

func TestFindContextAbsent(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	_, err = db.FindContextByName("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListContextsSorted(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	for _, name := range []string{"work", "errands", "home"} {
		if _, err := db.CreateContext(name); err != nil {
			t.Fatalf("CreateContext failed: %v", err)
		}
	}

	contexts, err := db.ListContexts()
	if err != nil {
		t.Fatalf("ListContexts failed: %v", err)
	}

	want := []string{"errands", "home", "work"}
	if len(contexts) != len(want) {
		t.Fatalf("Expected %d contexts, got %d", len(want), len(contexts))
	}
	for i, name := range want {
		if contexts[i].Name != name {
			t.Errorf("Position %d: got %s, want %s", i, contexts[i].Name, name)
		}
	}
}

func TestCreateContextEmptyName(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if _, err := db.CreateContext("  "); err == nil {
		t.Error("Expected error for empty context name")
	}
}

func TestProjectsMirrorContexts(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	// Same name in both namespaces must not collide
	if _, err := db.CreateContext("alpha"); err != nil {
		t.Fatalf("CreateContext failed: %v", err)
	}
	if _, err := db.CreateProject("alpha"); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	if _, err := db.CreateProject("alpha"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got %v", err)
	}

	projects, err := db.ListProjects()
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(projects) != 1 {
		t.Errorf("Expected 1 project, got %d", len(projects))
	}
}

func TestFindOrCreateContext(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	id1, err := db.FindOrCreateContext("work")
	if err != nil {
		t.Fatalf("FindOrCreateContext failed: %v", err)
	}

	id2, err := db.FindOrCreateContext("work")
	if err != nil {
		t.Fatalf("FindOrCreateContext failed: %v", err)
	}
	if id1 != id2 {
		t.Errorf("Expected same id, got %d and %d", id1, id2)
	}

	contexts, _ := db.ListContexts()
	if len(contexts) != 1 {
		t.Errorf("Expected 1 context, got %d", len(contexts))
	}
}
