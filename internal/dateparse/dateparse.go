package dateparse

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	dparse "github.com/araddon/dateparse"
	"github.com/jinzhu/now"

	"github.com/mfinley/taskwise/internal/models"
)

// Generator is the single capability required from the inference
// service: one prompt in, free text out.
type Generator interface {
	GenerateContent(prompt string) (string, error)
}

// Resolver converts natural-language date text into canonical
// timestamps. Local deterministic parsing runs first; the inference
// client, when present, is the fallback.
type Resolver struct {
	Gen Generator        // nil means the capability is unavailable
	Now func() time.Time // defaults to time.Now
}

func (r *Resolver) clock() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Weeks run Monday through Sunday
func (r *Resolver) calendar(t time.Time) *now.Now {
	cfg := &now.Config{WeekStartDay: time.Monday, TimeLocation: t.Location()}
	return cfg.With(t)
}

const dateTimePrompt = `Extract the exact date and time from the following text.
If no time is explicitly mentioned, assume the end of the day (23:59).
Return the result in ISO 8601 format (YYYY-MM-DD HH:MM:SS).
If no date or time is found, indicate with 'None'.

Text: '%s'`

const dateRangePrompt = `Parse the following date range expression into start and end dates.
Return the results as a JSON object with 'start_date' and 'end_date' in ISO 8601 format (YYYY-MM-DD HH:MM:SS).
If the range is open-ended, use None for the missing bound.

Date range: '%s'`

var explicitTimeRe = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}|\d{1,2}\s*(am|pm)|T\d{2})`)

// ResolveDateTime maps date/time text to a canonical timestamp. The
// second return is false when nothing could be resolved. Date-only
// input resolves to end of day: a due date of "Friday" means Friday's
// close, not its start.
func (r *Resolver) ResolveDateTime(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	chain := []func(string) (string, bool){
		r.localDateTime,
		r.inferDateTime,
	}
	for _, resolve := range chain {
		if ts, ok := resolve(text); ok {
			return ts, true
		}
	}
	return "", false
}

// localDateTime is the deterministic first link of the chain
func (r *Resolver) localDateTime(text string) (string, bool) {
	dt, err := dparse.ParseIn(text, r.clock().Location())
	if err != nil {
		return "", false
	}

	if dt.Hour() == 0 && dt.Minute() == 0 && dt.Second() == 0 && !explicitTimeRe.MatchString(text) {
		dt = time.Date(dt.Year(), dt.Month(), dt.Day(), 23, 59, 59, 0, dt.Location())
	}
	return dt.Format(models.TimeFormat), true
}

// inferDateTime delegates to the inference capability
func (r *Resolver) inferDateTime(text string) (string, bool) {
	if r.Gen == nil {
		return "", false
	}

	resp, err := r.Gen.GenerateContent(fmt.Sprintf(dateTimePrompt, text))
	if err != nil {
		return "", false
	}

	resp = strings.TrimSpace(stripCodeFence(resp))
	if resp == "" || strings.EqualFold(resp, "none") {
		return "", false
	}

	dt, err := dparse.ParseIn(resp, r.clock().Location())
	if err != nil {
		return "", false
	}
	return dt.Format(models.TimeFormat), true
}

// ResolveDateRange maps range text like "this week" to a
// (start, end) timestamp pair. Either bound may be empty for an open
// or unresolvable side; both empty means the range was unresolvable.
func (r *Resolver) ResolveDateRange(text string) (string, string) {
	if start, end, ok := r.namedRange(text); ok {
		return start, end
	}
	return r.inferRange(text)
}

// namedRange resolves the fixed vocabulary without external help
func (r *Resolver) namedRange(text string) (string, string, bool) {
	t := r.clock()

	var start, end time.Time
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "today":
		c := r.calendar(t)
		start, end = c.BeginningOfDay(), c.EndOfDay()
	case "tomorrow":
		c := r.calendar(t.AddDate(0, 0, 1))
		start, end = c.BeginningOfDay(), c.EndOfDay()
	case "yesterday":
		c := r.calendar(t.AddDate(0, 0, -1))
		start, end = c.BeginningOfDay(), c.EndOfDay()
	case "this week":
		c := r.calendar(t)
		start, end = c.BeginningOfWeek(), c.EndOfWeek()
	case "next week":
		c := r.calendar(t.AddDate(0, 0, 7))
		start, end = c.BeginningOfWeek(), c.EndOfWeek()
	case "this month":
		c := r.calendar(t)
		start, end = c.BeginningOfMonth(), c.EndOfMonth()
	default:
		return "", "", false
	}

	return start.Format(models.TimeFormat), end.Format(models.TimeFormat), true
}

// inferRange asks the inference capability for a structured range,
// falling back to a line scan when the response is not valid JSON
func (r *Resolver) inferRange(text string) (string, string) {
	if r.Gen == nil {
		return "", ""
	}

	resp, err := r.Gen.GenerateContent(fmt.Sprintf(dateRangePrompt, text))
	if err != nil {
		return "", ""
	}

	cleaned := stripCodeFence(strings.TrimSpace(resp))

	var parsed struct {
		StartDate *string `json:"start_date"`
		EndDate   *string `json:"end_date"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err == nil {
		return r.canonicalBound(parsed.StartDate), r.canonicalBound(parsed.EndDate)
	}

	return r.scanRangeLines(cleaned)
}

// canonicalBound normalizes one inferred bound, dropping null sentinels
func (r *Resolver) canonicalBound(s *string) string {
	if s == nil {
		return ""
	}
	v := strings.TrimSpace(*s)
	if v == "" || strings.EqualFold(v, "none") || strings.EqualFold(v, "null") {
		return ""
	}
	dt, err := dparse.ParseIn(v, r.clock().Location())
	if err != nil {
		return ""
	}
	return dt.Format(models.TimeFormat)
}

// scanRangeLines salvages start_date/end_date tokens from a
// free-text response
func (r *Resolver) scanRangeLines(resp string) (string, string) {
	var start, end string
	for _, line := range strings.Split(resp, "\n") {
		lower := strings.ToLower(line)
		parts := strings.SplitN(line, ":", 2)
		if len(parts) < 2 {
			continue
		}
		value := strings.Trim(strings.TrimSpace(parts[1]), `"',`)
		if value == "" || strings.EqualFold(value, "none") || strings.EqualFold(value, "null") {
			continue
		}

		dt, err := dparse.ParseIn(value, r.clock().Location())
		if err != nil {
			continue
		}
		if strings.Contains(lower, "start_date") && start == "" {
			start = dt.Format(models.TimeFormat)
		} else if strings.Contains(lower, "end_date") && end == "" {
			end = dt.Format(models.TimeFormat)
		}
	}
	return start, end
}

// stripCodeFence removes markdown code block wrappers around a model
// response
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "```") {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
