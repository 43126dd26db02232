// Package timeutil contains time related helpers
package timeutil

import "time"

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Midnight truncates t to the start of its UTC day
func Midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays returns t shifted by n calendar days
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// MonthStart returns the first instant of t's UTC month
func MonthStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// PrevMonthStart returns the first instant of the month before t's UTC month
func PrevMonthStart(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, -1, 0)
}

// NextMonthStart returns the first instant of the month after t's UTC month
func NextMonthStart(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, 0)
}

// SameDay reports whether a and b fall on the same UTC calendar day
func SameDay(a, b time.Time) bool {
	return Midnight(a).Equal(Midnight(b))
}
