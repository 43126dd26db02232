// Package timeparse converts upload filenames and raw row times into absolute instants
package timeparse

import (
	"strconv"
	"strings"
	"time"

	perr "viewlog/internal/platform/errors"
)

// PostDate derives the calendar date an upload represents from its filename.
// Filenames look like MM_DD_YYYY-<suffix>; the segment before the first hyphen
// must split on underscore into exactly month, day, and year
func PostDate(filename string) (time.Time, error) {
	name := strings.TrimSpace(filename)
	if name == "" {
		return time.Time{}, perr.InvalidFilenamef("empty filename")
	}

	left, _, _ := strings.Cut(name, "-")
	parts := strings.Split(left, "_")
	if len(parts) != 3 {
		return time.Time{}, perr.InvalidFilenamef("filename %q: want MM_DD_YYYY before first hyphen", filename)
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, perr.InvalidFilenamef("filename %q: month %q is not numeric", filename, parts[0])
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, perr.InvalidFilenamef("filename %q: day %q is not numeric", filename, parts[1])
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, perr.InvalidFilenamef("filename %q: year %q is not numeric", filename, parts[2])
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components, so round-trip check them
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, perr.InvalidFilenamef("filename %q: %04d-%02d-%02d is not a real date", filename, year, month, day)
	}
	return d, nil
}
