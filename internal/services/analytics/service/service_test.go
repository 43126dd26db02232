package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	perr "viewlog/internal/platform/errors"
	"viewlog/internal/services/analytics/domain"
	recdomain "viewlog/internal/services/records/domain"
)

// fakeReads serves canned daily counts and window tallies
type fakeReads struct {
	daily       []recdomain.DailyCount
	dailyErr    error
	lastWindow  recdomain.Window
	lastSubject string

	records  map[recdomain.Window]int64
	subjects map[recdomain.Window]int64
	posts    map[recdomain.Window]int64
}

func (f *fakeReads) CountByFilename(context.Context) ([]recdomain.FilenameCount, error) {
	return nil, nil
}

func (f *fakeReads) DailyCounts(_ context.Context, w recdomain.Window, subject string) ([]recdomain.DailyCount, error) {
	f.lastWindow = w
	f.lastSubject = subject
	return f.daily, f.dailyErr
}

func (f *fakeReads) CountRecordsBetween(_ context.Context, w recdomain.Window) (int64, error) {
	return f.records[w], nil
}

func (f *fakeReads) CountDistinctSubjectsBetween(_ context.Context, w recdomain.Window) (int64, error) {
	return f.subjects[w], nil
}

func (f *fakeReads) CountDistinctPostDatesBetween(_ context.Context, w recdomain.Window) (int64, error) {
	return f.posts[w], nil
}

// fixed clock: 2024-05-15T10:30 UTC
var testNow = time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)

func newTestSvc(reads *fakeReads) *Svc {
	return New(reads).WithNow(func() time.Time { return testNow })
}

func TestSeries_ExactlySevenGaplessPoints(t *testing.T) {
	t.Parallel()

	reads := &fakeReads{
		daily: []recdomain.DailyCount{
			{Day: time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC), Count: 4},
			{Day: time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC), Count: 1},
		},
	}
	svc := newTestSvc(reads)

	points, err := svc.Series(context.Background(), domain.SeriesInput{Days: 7})
	require.NoError(t, err)
	require.Len(t, points, 7)

	require.Equal(t, []domain.TimeSeriesPoint{
		{Date: "2024-05-08", Count: 0},
		{Date: "2024-05-09", Count: 4},
		{Date: "2024-05-10", Count: 0},
		{Date: "2024-05-11", Count: 0},
		{Date: "2024-05-12", Count: 1},
		{Date: "2024-05-13", Count: 0},
		{Date: "2024-05-14", Count: 0},
	}, points)

	// half-open window [today-7, today)
	require.Equal(t, time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC), reads.lastWindow.Since)
	require.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), reads.lastWindow.Until)
}

func TestSeries_SubjectFilterPassedThrough(t *testing.T) {
	t.Parallel()

	reads := &fakeReads{}
	svc := newTestSvc(reads)

	points, err := svc.Series(context.Background(), domain.SeriesInput{Days: 3, Subject: "Ana Souza"})
	require.NoError(t, err)
	require.Len(t, points, 3)
	require.Equal(t, "Ana Souza", reads.lastSubject)
}

func TestSeries_RejectsNonPositiveDays(t *testing.T) {
	t.Parallel()

	svc := newTestSvc(&fakeReads{})

	for _, days := range []int{0, -1, -100} {
		_, err := svc.Series(context.Background(), domain.SeriesInput{Days: days})
		require.Error(t, err)
		require.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
	}
}

func TestSeries_StorageErrorPropagates(t *testing.T) {
	t.Parallel()

	reads := &fakeReads{dailyErr: perr.Unavailablef("pg down")}
	svc := newTestSvc(reads)

	_, err := svc.Series(context.Background(), domain.SeriesInput{Days: 7})
	require.Error(t, err)
	require.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
}

func TestMonthly_WindowsAndChange(t *testing.T) {
	t.Parallel()

	curStart := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	prevStart := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	cur := recdomain.Window{Since: curStart, Until: testNow}
	prev := recdomain.Window{Since: prevStart, Until: curStart}

	reads := &fakeReads{
		posts:    map[recdomain.Window]int64{cur: 5, prev: 0},
		subjects: map[recdomain.Window]int64{cur: 0, prev: 0},
		records:  map[recdomain.Window]int64{cur: 15, prev: 10},
	}
	svc := newTestSvc(reads)

	stats, err := svc.Monthly(context.Background())
	require.NoError(t, err)
	require.Equal(t, "2024-05", stats.Month)

	// previous=0, current=5 -> 100
	require.Equal(t, domain.MetricChange{Current: 5, Previous: 0, ChangePct: 100}, stats.Posts)
	// previous=0, current=0 -> 0
	require.Equal(t, domain.MetricChange{Current: 0, Previous: 0, ChangePct: 0}, stats.Viewers)
	// previous=10, current=15 -> 50.00
	require.Equal(t, domain.MetricChange{Current: 15, Previous: 10, ChangePct: 50.0}, stats.Records)
}

func TestChangePct_Rounding(t *testing.T) {
	t.Parallel()

	cases := []struct {
		current, previous int64
		want              float64
	}{
		{5, 0, 100},
		{0, 0, 0},
		{15, 10, 50},
		{10, 15, -33.33},
		{1, 3, -66.67},
		{7, 3, 133.33},
		{3, 3, 0},
	}

	for _, c := range cases {
		got := changePct(c.current, c.previous)
		require.Equal(t, c.want, got, "changePct(%d, %d)", c.current, c.previous)
	}
}
