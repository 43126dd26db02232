package timeutil

import (
	"testing"
	"time"
)

func TestMidnight(t *testing.T) {
	t.Parallel()

	in := time.Date(2024, 5, 15, 18, 42, 7, 123, time.UTC)
	want := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	if got := Midnight(in); !got.Equal(want) {
		t.Fatalf("Midnight = %v, want %v", got, want)
	}

	// non-UTC inputs land on the UTC day
	est := time.FixedZone("EST", -5*3600)
	in = time.Date(2024, 5, 15, 22, 0, 0, 0, est) // 2024-05-16T03:00Z
	want = time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC)
	if got := Midnight(in); !got.Equal(want) {
		t.Fatalf("Midnight(est) = %v, want %v", got, want)
	}
}

func TestMonthBoundaries(t *testing.T) {
	t.Parallel()

	in := time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)

	if got := MonthStart(in); !got.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("MonthStart = %v", got)
	}
	if got := PrevMonthStart(in); !got.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("PrevMonthStart = %v", got)
	}
	if got := NextMonthStart(in); !got.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("NextMonthStart = %v", got)
	}

	// january rolls back across the year boundary
	jan := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	if got := PrevMonthStart(jan); !got.Equal(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("PrevMonthStart(jan) = %v", got)
	}
}

func TestAddDaysAndSameDay(t *testing.T) {
	t.Parallel()

	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := AddDays(d, -1); !got.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("AddDays(-1) across leap boundary = %v", got)
	}

	a := time.Date(2024, 5, 15, 1, 0, 0, 0, time.UTC)
	b := time.Date(2024, 5, 15, 23, 0, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Fatalf("SameDay should be true for same UTC day")
	}
	if SameDay(a, AddDays(b, 1)) {
		t.Fatalf("SameDay should be false across days")
	}
}

func TestPtr(t *testing.T) {
	t.Parallel()

	var zero time.Time
	if Ptr(zero) != nil {
		t.Fatalf("Ptr(zero) should be nil")
	}
	now := time.Now()
	if p := Ptr(now); p == nil || !p.Equal(now) {
		t.Fatalf("Ptr(now) should round-trip")
	}
}
