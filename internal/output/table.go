package output

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/mfinley/taskwise/internal/dateparse"
	"github.com/mfinley/taskwise/internal/models"
)

var (
	highStyle    = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	mediumStyle  = lipgloss.NewStyle().Foreground(warningColor)
	lowStyle     = lipgloss.NewStyle().Foreground(successColor)
	pendingStyle = lipgloss.NewStyle()
	doneStyle    = lipgloss.NewStyle().Foreground(successColor)
)

func renderPriority(p *models.Priority) string {
	if p == nil {
		return mutedStyle.Render("none")
	}
	switch *p {
	case models.PriorityHigh:
		return highStyle.Render(string(*p))
	case models.PriorityMedium:
		return mediumStyle.Render(string(*p))
	case models.PriorityLow:
		return lowStyle.Render(string(*p))
	default:
		return string(*p)
	}
}

func renderStatus(completed bool) string {
	if completed {
		return doneStyle.Render("Completed")
	}
	return pendingStyle.Render("Pending")
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Tasks renders a task table
func Tasks(w io.Writer, tasks []models.Task) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDESCRIPTION\tPRIORITY\tDUE\tCONTEXT\tPROJECT\tSTATUS")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			t.Description,
			renderPriority(t.Priority),
			dateparse.FormatRelative(t.DueDateTime),
			orEmpty(t.ContextName),
			orEmpty(t.ProjectName),
			renderStatus(t.Completed))
	}
	tw.Flush()
}

// Contexts renders a context table
func Contexts(w io.Writer, contexts []models.Context) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, c := range contexts {
		fmt.Fprintln(tw, strconv.FormatInt(c.ID, 10)+"\t"+c.Name)
	}
	tw.Flush()
}

// Projects renders a project table
func Projects(w io.Writer, projects []models.Project) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, p := range projects {
		fmt.Fprintln(tw, strconv.FormatInt(p.ID, 10)+"\t"+p.Name)
	}
	tw.Flush()
}
