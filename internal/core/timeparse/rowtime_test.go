package timeparse

import (
	"testing"
	"time"

	perr "viewlog/internal/platform/errors"
)

var mayFirst = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func TestNormalize_Today(t *testing.T) {
	t.Parallel()

	got, err := Normalize("Today at 3:15 PM", mayFirst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 5, 1, 15, 15, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalize_Yesterday(t *testing.T) {
	t.Parallel()

	got, err := Normalize("Yesterday at 9:00 AM", mayFirst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 4, 30, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalize_ClockShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want time.Time
	}{
		{"Today at 12:00 AM", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"Today at 12:30 PM", time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)},
		{"Today at 11:59 PM", time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)},
		{"Today at 3:15PM", time.Date(2024, 5, 1, 15, 15, 0, 0, time.UTC)},
		{"Today at 3:15 pm", time.Date(2024, 5, 1, 15, 15, 0, 0, time.UTC)},
		{"Yesterday at 9:00 am", time.Date(2024, 4, 30, 9, 0, 0, 0, time.UTC)},
		{"Today at 14:45", time.Date(2024, 5, 1, 14, 45, 0, 0, time.UTC)},
		{"Yesterday at 23:00", time.Date(2024, 4, 30, 23, 0, 0, 0, time.UTC)},
	}

	for _, c := range cases {
		got, err := Normalize(c.raw, mayFirst)
		if err != nil {
			t.Fatalf("Normalize(%q) unexpected error: %v", c.raw, err)
		}
		if !got.Equal(c.want) {
			t.Fatalf("Normalize(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestNormalize_AbsoluteFormats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want time.Time
	}{
		{"2024/04/15", time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-04-15", time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)},
		// MM/DD/YYYY is attempted before DD/MM/YYYY, so an ambiguous value
		// resolves month-first
		{"04/15/2024", time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)},
		{"15/04/2024", time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)},
		{"01/02/2024", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, c := range cases {
		got, err := Normalize(c.raw, mayFirst)
		if err != nil {
			t.Fatalf("Normalize(%q) unexpected error: %v", c.raw, err)
		}
		if !got.Equal(c.want) {
			t.Fatalf("Normalize(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestNormalize_Malformed(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"   ",
		"whenever",
		"Today",              // missing clock suffix
		"Yesterday at",       // empty clock
		"Today at noonish",   // unparseable clock
		"2024.04.15",         // unsupported separator
		"Tomorrow at 3:00 PM", // unsupported keyword
	}

	for _, raw := range cases {
		_, err := Normalize(raw, mayFirst)
		if err == nil {
			t.Fatalf("Normalize(%q) expected error, got none", raw)
		}
		if !perr.IsCode(err, perr.ErrorCodeMalformedTimestamp) {
			t.Fatalf("Normalize(%q) error code = %v, want malformed timestamp", raw, perr.CodeOf(err))
		}
	}
}
