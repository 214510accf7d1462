package models

import "testing"

func TestParsePriority(t *testing.T) {
	cases := map[string]Priority{
		"high":     PriorityHigh,
		"HIGH":     PriorityHigh,
		" Medium ": PriorityMedium,
		"low":      PriorityLow,
	}
	for input, want := range cases {
		got, err := ParsePriority(input)
		if err != nil {
			t.Errorf("ParsePriority(%q) failed: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParsePriority(%q) = %q, want %q", input, got, want)
		}
	}

	for _, input := range []string{"", "urgent", "hi"} {
		if _, err := ParsePriority(input); err == nil {
			t.Errorf("ParsePriority(%q) should fail", input)
		}
	}
}

func TestTaskUpdateEmpty(t *testing.T) {
	if !(TaskUpdate{}).Empty() {
		t.Error("Zero value should be empty")
	}

	desc := "x"
	if (TaskUpdate{Description: &desc}).Empty() {
		t.Error("Update with a field should not be empty")
	}

	blank := ""
	if (TaskUpdate{ContextName: &blank}).Empty() {
		t.Error("Supplied empty string is still a supplied field")
	}
}
