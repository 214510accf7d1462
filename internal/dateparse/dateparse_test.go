package dateparse

import (
	"fmt"
	"testing"
	"time"
)

// fakeGen plays the inference service with a canned response.
type fakeGen struct {
	resp    string
	err     error
	prompts []string
}

func (f *fakeGen) GenerateContent(prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.resp, f.err
}

// Wednesday, June 18 2025, mid-morning
var fixedNow = time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC)

func fixedResolver(gen Generator) *Resolver {
	return &Resolver{Gen: gen, Now: func() time.Time { return fixedNow }}
}

func TestResolveDateTimeDateOnly(t *testing.T) {
	r := fixedResolver(nil)

	got, ok := r.ResolveDateTime("2025-03-01")
	if !ok {
		t.Fatal("Expected resolution")
	}
	// No explicit time means end of day
	if got != "2025-03-01 23:59:59" {
		t.Errorf("Got %q, want end of day", got)
	}
}

func TestResolveDateTimeExplicitTime(t *testing.T) {
	r := fixedResolver(nil)

	cases := map[string]string{
		"2025-03-01 14:30":     "2025-03-01 14:30:00",
		"2025-03-01 00:00":     "2025-03-01 00:00:00",
		"March 1, 2025 9:15am": "2025-03-01 09:15:00",
	}
	for input, want := range cases {
		got, ok := r.ResolveDateTime(input)
		if !ok {
			t.Errorf("%q: expected resolution", input)
			continue
		}
		if got != want {
			t.Errorf("%q: got %q, want %q", input, got, want)
		}
	}
}

func TestResolveDateTimeEmpty(t *testing.T) {
	r := fixedResolver(nil)

	if _, ok := r.ResolveDateTime("   "); ok {
		t.Error("Blank input should not resolve")
	}
}

func TestResolveDateTimeNoGenerator(t *testing.T) {
	r := fixedResolver(nil)

	if _, ok := r.ResolveDateTime("the day after the party"); ok {
		t.Error("Unparseable input with no generator should not resolve")
	}
}

func TestResolveDateTimeInferred(t *testing.T) {
	gen := &fakeGen{resp: "2025-12-25 18:00:00"}
	r := fixedResolver(gen)

	got, ok := r.ResolveDateTime("the evening of christmas")
	if !ok {
		t.Fatal("Expected resolution via generator")
	}
	if got != "2025-12-25 18:00:00" {
		t.Errorf("Got %q", got)
	}
	if len(gen.prompts) != 1 {
		t.Fatalf("Expected 1 prompt, got %d", len(gen.prompts))
	}
}

func TestResolveDateTimeInferredNone(t *testing.T) {
	gen := &fakeGen{resp: "None"}
	r := fixedResolver(gen)

	if _, ok := r.ResolveDateTime("whenever"); ok {
		t.Error("'None' response should not resolve")
	}
}

func TestResolveDateTimeInferredError(t *testing.T) {
	gen := &fakeGen{err: fmt.Errorf("service down")}
	r := fixedResolver(gen)

	if _, ok := r.ResolveDateTime("sometime soonish maybe"); ok {
		t.Error("Generator error should not resolve")
	}
}

func TestResolveDateTimeLocalWins(t *testing.T) {
	gen := &fakeGen{resp: "1999-01-01 00:00:00"}
	r := fixedResolver(gen)

	got, ok := r.ResolveDateTime("2025-03-01 14:30")
	if !ok || got != "2025-03-01 14:30:00" {
		t.Fatalf("Local parse should win, got %q", got)
	}
	if len(gen.prompts) != 0 {
		t.Error("Generator should not be consulted for locally parseable input")
	}
}

func TestNamedRanges(t *testing.T) {
	r := fixedResolver(nil)

	cases := []struct {
		input      string
		start, end string
	}{
		{"today", "2025-06-18 00:00:00", "2025-06-18 23:59:59"},
		{"Tomorrow", "2025-06-19 00:00:00", "2025-06-19 23:59:59"},
		{"yesterday", "2025-06-17 00:00:00", "2025-06-17 23:59:59"},
		{"this week", "2025-06-16 00:00:00", "2025-06-22 23:59:59"},
		{"next week", "2025-06-23 00:00:00", "2025-06-29 23:59:59"},
		{"this month", "2025-06-01 00:00:00", "2025-06-30 23:59:59"},
	}
	for _, tc := range cases {
		start, end := r.ResolveDateRange(tc.input)
		if start != tc.start || end != tc.end {
			t.Errorf("%q: got (%q, %q), want (%q, %q)", tc.input, start, end, tc.start, tc.end)
		}
	}
}

func TestResolveDateRangeNoGenerator(t *testing.T) {
	r := fixedResolver(nil)

	start, end := r.ResolveDateRange("during the conference")
	if start != "" || end != "" {
		t.Errorf("Expected empty bounds, got (%q, %q)", start, end)
	}
}

func TestResolveDateRangeInferredJSON(t *testing.T) {
	gen := &fakeGen{resp: "```json\n{\"start_date\": \"2025-07-01 00:00:00\", \"end_date\": \"2025-07-14 23:59:59\"}\n```"}
	r := fixedResolver(gen)

	start, end := r.ResolveDateRange("the first two weeks of july")
	if start != "2025-07-01 00:00:00" {
		t.Errorf("Start: got %q", start)
	}
	if end != "2025-07-14 23:59:59" {
		t.Errorf("End: got %q", end)
	}
}

func TestResolveDateRangeOpenEnded(t *testing.T) {
	gen := &fakeGen{resp: `{"start_date": "2025-07-01 00:00:00", "end_date": null}`}
	r := fixedResolver(gen)

	start, end := r.ResolveDateRange("from july onward")
	if start != "2025-07-01 00:00:00" || end != "" {
		t.Errorf("Got (%q, %q)", start, end)
	}
}

func TestResolveDateRangeLineSalvage(t *testing.T) {
	gen := &fakeGen{resp: "Here is the range:\nstart_date: 2025-07-01 00:00:00\nend_date: none"}
	r := fixedResolver(gen)

	start, end := r.ResolveDateRange("from july onward")
	if start != "2025-07-01 00:00:00" || end != "" {
		t.Errorf("Got (%q, %q)", start, end)
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		"plain text":                    "plain text",
		"```json\n{\"a\": 1}\n```":      "{\"a\": 1}",
		"```\n2025-01-01 00:00:00\n```": "2025-01-01 00:00:00",
	}
	for input, want := range cases {
		if got := stripCodeFence(input); got != want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", input, got, want)
		}
	}
}
