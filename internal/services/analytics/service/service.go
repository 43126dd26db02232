// Package service contains analytics workflows over the records read surface
package service

import (
	"context"
	"math"
	"time"

	perr "viewlog/internal/platform/errors"
	"viewlog/internal/platform/timeutil"
	"viewlog/internal/services/analytics/domain"
	recdomain "viewlog/internal/services/records/domain"
)

// Service defines the analytics service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the analytics service
type Svc struct {
	Reads recdomain.ReadPort

	// now is injectable so month boundaries are testable
	now func() time.Time
}

// New constructs an analytics service over the records read port
func New(reads recdomain.ReadPort) *Svc {
	if reads == nil {
		panic("analytics.Service requires a non nil records read port")
	}
	return &Svc{Reads: reads, now: time.Now}
}

// WithNow overrides the clock, for tests
func (s *Svc) WithNow(now func() time.Time) *Svc {
	s.now = now
	return s
}

// Series implements domain.ServicePort. The window is the half-open
// [today-days, today) so the result always has exactly days points, one per
// calendar day in ascending order, zero-filled where no records match
func (s *Svc) Series(ctx context.Context, in domain.SeriesInput) ([]domain.TimeSeriesPoint, error) {
	if in.Days < 1 {
		return nil, perr.InvalidArgf("days must be a positive integer, got %d", in.Days)
	}

	today := timeutil.Midnight(s.now())
	w := recdomain.Window{
		Since: timeutil.AddDays(today, -in.Days),
		Until: today,
	}

	counts, err := s.Reads.DailyCounts(ctx, w, in.Subject)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]int64, len(counts))
	for _, dc := range counts {
		byDay[dc.Day.Format("2006-01-02")] = dc.Count
	}

	out := make([]domain.TimeSeriesPoint, 0, in.Days)
	for d := w.Since; d.Before(w.Until); d = timeutil.AddDays(d, 1) {
		key := d.Format("2006-01-02")
		out = append(out, domain.TimeSeriesPoint{Date: key, Count: byDay[key]})
	}
	return out, nil
}

// Monthly implements domain.ServicePort. The current month runs from its
// first instant to now; the previous month spans full month boundaries.
// Posts count distinct post dates, viewers and records count on seen_time
func (s *Svc) Monthly(ctx context.Context) (domain.MonthlyStatistics, error) {
	now := s.now().UTC()
	curStart := timeutil.MonthStart(now)
	prevStart := timeutil.PrevMonthStart(now)

	cur := recdomain.Window{Since: curStart, Until: now}
	prev := recdomain.Window{Since: prevStart, Until: curStart}

	posts, err := s.metric(ctx, cur, prev, s.Reads.CountDistinctPostDatesBetween)
	if err != nil {
		return domain.MonthlyStatistics{}, err
	}
	viewers, err := s.metric(ctx, cur, prev, s.Reads.CountDistinctSubjectsBetween)
	if err != nil {
		return domain.MonthlyStatistics{}, err
	}
	records, err := s.metric(ctx, cur, prev, s.Reads.CountRecordsBetween)
	if err != nil {
		return domain.MonthlyStatistics{}, err
	}

	return domain.MonthlyStatistics{
		Month:   curStart.Format("2006-01"),
		Posts:   posts,
		Viewers: viewers,
		Records: records,
	}, nil
}

func (s *Svc) metric(
	ctx context.Context,
	cur, prev recdomain.Window,
	count func(context.Context, recdomain.Window) (int64, error),
) (domain.MetricChange, error) {
	c, err := count(ctx, cur)
	if err != nil {
		return domain.MetricChange{}, err
	}
	p, err := count(ctx, prev)
	if err != nil {
		return domain.MetricChange{}, err
	}
	return domain.MetricChange{Current: c, Previous: p, ChangePct: changePct(c, p)}, nil
}

// changePct defines growth-from-nothing as 100 and no-activity as 0 so a zero
// previous month never divides
func changePct(current, previous int64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	raw := (float64(current-previous) / float64(previous)) * 100
	return math.Round(raw*100) / 100
}
