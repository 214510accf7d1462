// Package suggest asks the inference service for task metadata the
// user didn't spell out: a plausible due date, or which existing
// context a task belongs to.
package suggest

import (
	"fmt"
	"strings"
	"time"

	dparse "github.com/araddon/dateparse"

	"github.com/mfinley/taskwise/internal/dateparse"
	"github.com/mfinley/taskwise/internal/models"
)

const dueDatePrompt = `Based on the following task description, suggest a realistic due date and time in ISO 8601 format (YYYY-MM-DD HH:MM:SS).
If no specific timeframe is implied, suggest a reasonable default within the next week.
Task: '%s'`

const contextPrompt = `Based on the task description '%s' and the following list of previously used contexts: %s,
suggest the most relevant context. If none seem relevant, suggest 'general'.`

// DueDate suggests a due date for a task description. Returns the
// canonical timestamp, or an error when the capability is
// unavailable or its answer is unparseable.
func DueDate(gen dateparse.Generator, description string) (string, error) {
	resp, err := gen.GenerateContent(fmt.Sprintf(dueDatePrompt, description))
	if err != nil {
		return "", err
	}

	dt, err := dparse.ParseIn(strings.TrimSpace(resp), time.Local)
	if err != nil {
		return "", fmt.Errorf("suggest: unparseable due date %q", strings.TrimSpace(resp))
	}
	return dt.Format(models.TimeFormat), nil
}

// Context suggests which of the existing contexts fits a task
// description. Falls back to "general" when there is nothing to pick
// from or the suggestion comes back empty.
func Context(gen dateparse.Generator, description string, contexts []string) (string, error) {
	if len(contexts) == 0 {
		return "general", nil
	}

	quoted := make([]string, len(contexts))
	for i, c := range contexts {
		quoted[i] = "'" + c + "'"
	}

	resp, err := gen.GenerateContent(fmt.Sprintf(contextPrompt, description, strings.Join(quoted, ", ")))
	if err != nil {
		return "", err
	}

	suggested := strings.ToLower(strings.TrimSpace(resp))
	suggested = strings.NewReplacer("'", "", `"`, "").Replace(suggested)
	if suggested == "" {
		return "general", nil
	}
	return suggested, nil
}
