package timeparse

import (
	"strings"
	"time"

	perr "viewlog/internal/platform/errors"
	"viewlog/internal/platform/timeutil"
)

// absolute formats tried in order; first full match wins
var absoluteLayouts = []string{
	"2006/01/02",
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
}

// clock layouts accepted after the "at" keyword
var clockLayouts = []string{
	"3:04 PM",
	"3:04PM",
	"15:04",
}

// Normalize converts a row's raw time text into an absolute instant.
//
// Three shapes are recognized, in priority order:
//  1. text containing "Today": the clock suffix after "at" lands on postDate's day
//  2. text containing "Yesterday": same clock suffix on the day before postDate
//  3. anything else is parsed as an absolute date
//
// Returns a MalformedTimestamp error when none of the shapes match
func Normalize(raw string, postDate time.Time) (time.Time, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return time.Time{}, perr.MalformedTimestampf("empty time value")
	}

	base := timeutil.Midnight(postDate)

	switch {
	case strings.Contains(text, "Today"):
		d, err := clockOffset(text)
		if err != nil {
			return time.Time{}, err
		}
		return base.Add(d), nil

	case strings.Contains(text, "Yesterday"):
		d, err := clockOffset(text)
		if err != nil {
			return time.Time{}, err
		}
		return timeutil.AddDays(base, -1).Add(d), nil
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, perr.MalformedTimestampf("unrecognized time value %q", raw)
}

// clockOffset extracts the clock suffix after "at" and returns it as a
// duration since midnight
func clockOffset(text string) (time.Duration, error) {
	_, clock, found := strings.Cut(text, " at ")
	if !found {
		return 0, perr.MalformedTimestampf("relative time %q is missing a clock suffix", text)
	}
	// Go's "PM" layout token is case sensitive; exports use both cases
	clock = strings.ToUpper(strings.TrimSpace(clock))

	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, clock)
		if err != nil {
			continue
		}
		return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
	}
	return 0, perr.MalformedTimestampf("unrecognized clock value %q", clock)
}
