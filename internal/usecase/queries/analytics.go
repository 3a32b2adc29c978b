package queries

import (
	"context"
	"time"

	"oficina-criativa/internal/pkg/clock"
)

type AnalyticsQueries interface {
	Summary(ctx context.Context) (*AnalyticsSummary, error)
}

type AnalyticsReadStore interface {
	ActiveSessionsByPage(ctx context.Context, since time.Time) ([]PageCount, error)
	PageViewsPerDay(ctx context.Context, since time.Time) (map[string]int64, error)
	CountPageViews(ctx context.Context, since time.Time) (int64, error)
	TopPages(ctx context.Context, since time.Time, limit int32) ([]PageCount, error)
	ButtonClicks(ctx context.Context, since time.Time) ([]EventCount, error)
}

type analyticsQueriesImpl struct {
	readStore AnalyticsReadStore
	clock     clock.Clock
}

func NewAnalyticsQueries(readStore AnalyticsReadStore, clock clock.Clock) AnalyticsQueries {
	return &analyticsQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

const topPagesLimit = 10

func (q *analyticsQueriesImpl) Summary(ctx context.Context) (*AnalyticsSummary, error) {
	now := q.clock.Now()
	last30min := now.Add(-30 * time.Minute)
	last7days := now.Add(-7 * 24 * time.Hour)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	liveNow, err := q.readStore.ActiveSessionsByPage(ctx, last30min)
	if err != nil {
		return nil, err
	}

	perDay, err := q.readStore.PageViewsPerDay(ctx, last7days)
	if err != nil {
		return nil, err
	}

	todayTotal, err := q.readStore.CountPageViews(ctx, todayStart)
	if err != nil {
		return nil, err
	}

	topPages, err := q.readStore.TopPages(ctx, last7days, topPagesLimit)
	if err != nil {
		return nil, err
	}

	buttonClicks, err := q.readStore.ButtonClicks(ctx, last7days)
	if err != nil {
		return nil, err
	}

	// Zero-fill the last seven days so the dashboard chart has no gaps.
	var weekTotal int64
	daily := make([]DailyCount, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		count := perDay[day]
		weekTotal += count
		daily = append(daily, DailyCount{Date: day, Count: count})
	}

	return &AnalyticsSummary{
		LiveNow:      liveNow,
		DailyViews:   daily,
		TodayTotal:   todayTotal,
		WeekTotal:    weekTotal,
		TopPages:     topPages,
		ButtonClicks: buttonClicks,
	}, nil
}
