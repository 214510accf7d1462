package models

import (
	"fmt"
	"strings"
	"time"
)

// TimeFormat is the canonical timestamp layout for every stored
// date. Zero-padded and fixed-width so that string comparison of two
// stored values matches chronological order.
const TimeFormat = "2006-01-02 15:04:05"

// Priority of a task
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority validates a user-entered priority string
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	default:
		return "", fmt.Errorf("invalid priority %q (must be high, medium, or low)", s)
	}
}

// Context groups tasks by life area (e.g. "work")
type Context struct {
	ID   int64
	Name string
}

// Project groups tasks by initiative
type Project struct {
	ID   int64
	Name string
}

// Task is a single tracked task. Priority, DueDateTime, ContextID and
// ProjectID are nullable; ContextName/ProjectName are filled in from
// the joined rows on read.
type Task struct {
	ID          int64
	Description string
	Priority    *Priority
	DueDateTime *string
	ContextID   *int64
	ProjectID   *int64
	ContextName *string
	ProjectName *string
	CreatedAt   time.Time
	Completed   bool
}

// TaskFilter selects tasks for listing. Filters compose with AND.
// Zero value lists pending tasks only.
type TaskFilter struct {
	All           bool // include completed tasks
	CompletedOnly bool
	OverdueOnly   bool // due strictly before now and not completed
	Priority      string
	ContextName   string
	ProjectName   string
	DueStart      string // canonical TimeFormat bounds, inclusive
	DueEnd        string
}

// TaskUpdate holds partial field updates for EditTask. Nil means
// "not supplied". An empty ContextName or ProjectName clears the
// association.
type TaskUpdate struct {
	Description *string
	Priority    *string
	DueDateTime *string
	ContextName *string
	ProjectName *string
}

// Empty reports whether no field was supplied
func (u TaskUpdate) Empty() bool {
	return u.Description == nil && u.Priority == nil && u.DueDateTime == nil &&
		u.ContextName == nil && u.ProjectName == nil
}
