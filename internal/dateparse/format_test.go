package dateparse

import (
	"testing"
	"time"
)

func TestFormatRelative(t *testing.T) {
	ref := fixedNow // Wednesday, June 18 2025

	cases := []struct {
		name string
		due  *string
		want string
	}{
		{"nil", nil, "No due date"},
		{"empty", strp(""), "No due date"},
		{"garbage", strp("not a date"), "Invalid date"},
		{"today", strp("2025-06-18 15:30:00"), "Today at 3:30 PM"},
		{"today earlier hour", strp("2025-06-18 08:00:00"), "Today at 8:00 AM"},
		{"tomorrow", strp("2025-06-19 09:00:00"), "Tomorrow at 9:00 AM"},
		{"yesterday", strp("2025-06-17 23:59:59"), "Yesterday at 11:59 PM"},
		{"within week", strp("2025-06-21 10:00:00"), "Saturday at 10:00 AM"},
		{"six days out", strp("2025-06-24 10:00:00"), "Tuesday at 10:00 AM"},
		{"few days ago", strp("2025-06-15 10:00:00"), "3 days ago"},
		{"week out", strp("2025-06-25 10:00:00"), "Jun 25, 2025 at 10:00 AM"},
		{"far past", strp("2024-12-01 08:30:00"), "Dec 1, 2024 at 8:30 AM"},
	}
	for _, tc := range cases {
		if got := formatRelativeAt(tc.due, ref); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestFormatRelativeAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation failed: %v", err)
	}

	// DST starts 2am Sunday March 9 2025; the local day spanning the
	// transition is 23 hours, which must not shrink the day offset.
	ref := time.Date(2025, 3, 9, 10, 0, 0, 0, loc)

	cases := []struct {
		name string
		due  string
		want string
	}{
		{"next day", "2025-03-10 09:00:00", "Tomorrow at 9:00 AM"},
		{"two days out", "2025-03-11 09:00:00", "Tuesday at 9:00 AM"},
		{"previous day", "2025-03-08 09:00:00", "Yesterday at 9:00 AM"},
	}
	for _, tc := range cases {
		due := tc.due
		if got := formatRelativeAt(&due, ref); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func strp(s string) *string {
	return &s
}
