package dateparse

import (
	"fmt"
	"time"

	"github.com/mfinley/taskwise/internal/models"
)

// FormatRelative renders a stored timestamp in a friendly relative
// form. Offsets are whole-day differences between calendar dates in
// local time, not elapsed hours.
func FormatRelative(due *string) string {
	return formatRelativeAt(due, time.Now())
}

func formatRelativeAt(due *string, ref time.Time) string {
	if due == nil || *due == "" {
		return "No due date"
	}

	dt, err := time.ParseInLocation(models.TimeFormat, *due, ref.Location())
	if err != nil {
		return "Invalid date"
	}

	// Compare calendar dates in UTC so DST transitions (23h/25h local
	// days) cannot skew the whole-day offset.
	dueDay := time.Date(dt.Year(), dt.Month(), dt.Day(), 0, 0, 0, 0, time.UTC)
	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	days := int(dueDay.Sub(refDay).Hours() / 24)

	clock := dt.Format("3:04 PM")

	switch {
	case days == 0:
		return "Today at " + clock
	case days == 1:
		return "Tomorrow at " + clock
	case days == -1:
		return "Yesterday at " + clock
	case days > 1 && days < 7:
		return dt.Format("Monday") + " at " + clock
	case days > -7 && days < 0:
		return fmt.Sprintf("%d days ago", -days)
	default:
		return dt.Format("Jan 2, 2006 at 3:04 PM")
	}
}
