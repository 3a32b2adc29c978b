//go:build unit

package queries

import (
	"context"
	"testing"
	"time"

	"oficina-criativa/internal/pkg/clock"
	"oficina-criativa/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type stubAnalyticsReadStore struct {
	perDay       map[string]int64
	liveNow      []PageCount
	todayTotal   int64
	topPages     []PageCount
	buttonClicks []EventCount
	perDayErr    error

	liveSince  time.Time
	weekSince  time.Time
	todaySince time.Time
}

func (s *stubAnalyticsReadStore) ActiveSessionsByPage(_ context.Context, since time.Time) ([]PageCount, error) {
	s.liveSince = since
	return s.liveNow, nil
}

func (s *stubAnalyticsReadStore) PageViewsPerDay(_ context.Context, since time.Time) (map[string]int64, error) {
	s.weekSince = since
	return s.perDay, s.perDayErr
}

func (s *stubAnalyticsReadStore) CountPageViews(_ context.Context, since time.Time) (int64, error) {
	s.todaySince = since
	return s.todayTotal, nil
}

func (s *stubAnalyticsReadStore) TopPages(_ context.Context, _ time.Time, _ int32) ([]PageCount, error) {
	return s.topPages, nil
}

func (s *stubAnalyticsReadStore) ButtonClicks(_ context.Context, _ time.Time) ([]EventCount, error) {
	return s.buttonClicks, nil
}

type AnalyticsQueriesSuite struct {
	suite.Suite
	store *stubAnalyticsReadStore
	clk   *clock.MockClock
	q     AnalyticsQueries
}

func TestAnalyticsQueriesSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsQueriesSuite))
}

func (s *AnalyticsQueriesSuite) SetupTest() {
	s.store = &stubAnalyticsReadStore{perDay: map[string]int64{}}
	s.clk = clock.NewMockClock(time.Date(2026, time.August, 31, 15, 0, 0, 0, time.UTC))
	s.q = NewAnalyticsQueries(s.store, s.clk)
}

func (s *AnalyticsQueriesSuite) TestSummaryZeroFillsSevenDays() {
	s.store.perDay = map[string]int64{
		"2026-08-31": 12,
		"2026-08-28": 5,
	}

	summary, err := s.q.Summary(context.Background())
	s.Require().NoError(err)

	want := []DailyCount{
		{Date: "2026-08-25", Count: 0},
		{Date: "2026-08-26", Count: 0},
		{Date: "2026-08-27", Count: 0},
		{Date: "2026-08-28", Count: 5},
		{Date: "2026-08-29", Count: 0},
		{Date: "2026-08-30", Count: 0},
		{Date: "2026-08-31", Count: 12},
	}
	s.Equal(want, summary.DailyViews)
	s.Equal(int64(17), summary.WeekTotal)
}

func (s *AnalyticsQueriesSuite) TestSummaryEmptyWeekStillHasSevenDays() {
	summary, err := s.q.Summary(context.Background())
	s.Require().NoError(err)

	s.Require().Len(summary.DailyViews, 7)
	for _, day := range summary.DailyViews {
		s.Zero(day.Count)
	}
	s.Zero(summary.WeekTotal)
}

func (s *AnalyticsQueriesSuite) TestSummaryWindows() {
	_, err := s.q.Summary(context.Background())
	s.Require().NoError(err)

	now := s.clk.Now()
	s.Equal(now.Add(-30*time.Minute), s.store.liveSince)
	s.Equal(now.Add(-7*24*time.Hour), s.store.weekSince)
	s.Equal(time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), s.store.todaySince)
}

func (s *AnalyticsQueriesSuite) TestSummaryPropagatesReadStoreError() {
	s.store.perDayErr = errs.New("query failed")

	summary, err := s.q.Summary(context.Background())
	s.Nil(summary)
	s.Error(err)
}
