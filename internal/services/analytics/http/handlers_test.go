package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	phttp "viewlog/internal/platform/net/http"
	"viewlog/internal/services/analytics/domain"
)

type fakeAnalytics struct {
	lastIn  domain.SeriesInput
	points  []domain.TimeSeriesPoint
	serErr  error
	monthly domain.MonthlyStatistics
}

func (f *fakeAnalytics) Series(_ context.Context, in domain.SeriesInput) ([]domain.TimeSeriesPoint, error) {
	f.lastIn = in
	if f.serErr != nil {
		return nil, f.serErr
	}
	return f.points, nil
}

func (f *fakeAnalytics) Monthly(context.Context) (domain.MonthlyStatistics, error) {
	return f.monthly, nil
}

func newTestMux(t *testing.T, fa *fakeAnalytics) stdhttp.Handler {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), fa)
	return mux
}

func TestSeriesDecodesAndReturnsPoints(t *testing.T) {
	fa := &fakeAnalytics{points: []domain.TimeSeriesPoint{
		{Date: "2024-05-13", Count: 0},
		{Date: "2024-05-14", Count: 3},
	}}
	mux := newTestMux(t, fa)

	req := httptest.NewRequest(stdhttp.MethodPost, "/series",
		bytes.NewBufferString(`{"days":2,"subject":"Jordan Reeves"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, stdhttp.StatusOK, rec.Code)
	require.Equal(t, 2, fa.lastIn.Days)
	require.Equal(t, "Jordan Reeves", fa.lastIn.Subject)

	var env struct {
		Data []domain.TimeSeriesPoint `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Len(t, env.Data, 2)
	require.Equal(t, "2024-05-14", env.Data[1].Date)
	require.EqualValues(t, 3, env.Data[1].Count)
}

func TestSeriesRejectsUnknownFields(t *testing.T) {
	mux := newTestMux(t, &fakeAnalytics{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/series",
		bytes.NewBufferString(`{"days":7,"bogus":true}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, stdhttp.StatusBadRequest, rec.Code)
}

func TestMonthlyReturnsEnvelope(t *testing.T) {
	fa := &fakeAnalytics{monthly: domain.MonthlyStatistics{
		Month:   "2024-05",
		Posts:   domain.MetricChange{Current: 3, Previous: 2, ChangePct: 50},
		Viewers: domain.MetricChange{Current: 10, Previous: 0, ChangePct: 100},
		Records: domain.MetricChange{Current: 40, Previous: 60, ChangePct: -33.33},
	}}
	mux := newTestMux(t, fa)

	req := httptest.NewRequest(stdhttp.MethodGet, "/monthly", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, stdhttp.StatusOK, rec.Code)

	var env struct {
		Data domain.MonthlyStatistics `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "2024-05", env.Data.Month)
	require.EqualValues(t, 50, env.Data.Posts.ChangePct)
	require.EqualValues(t, -33.33, env.Data.Records.ChangePct)
}
