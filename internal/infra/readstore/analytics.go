package readstore

import (
	"context"
	"time"

	"oficina-criativa/internal/infra"
	"oficina-criativa/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AnalyticsReadStore struct {
	pool *pgxpool.Pool
}

func NewAnalyticsReadStore(pool *pgxpool.Pool) *AnalyticsReadStore {
	return &AnalyticsReadStore{pool: pool}
}

// ActiveSessionsByPage counts distinct sessions per page since the
// given instant. Events without a session id are ignored.
func (s *AnalyticsReadStore) ActiveSessionsByPage(ctx context.Context, since time.Time) ([]queries.PageCount, error) {
	const query = `
		SELECT COALESCE(page, ''), COUNT(DISTINCT session_id)
		FROM analytics_events
		WHERE event_type = 'page_view' AND session_id IS NOT NULL AND created_at >= $1
		GROUP BY page
		ORDER BY 2 DESC
	`
	return s.queryPageCounts(ctx, query, since)
}

func (s *AnalyticsReadStore) PageViewsPerDay(ctx context.Context, since time.Time) (map[string]int64, error) {
	const query = `
		SELECT to_char(created_at, 'YYYY-MM-DD'), COUNT(*)
		FROM analytics_events
		WHERE event_type = 'page_view' AND created_at >= $1
		GROUP BY 1
	`
	rows, err := s.pool.Query(ctx, query, since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate daily views", err)
	}
	defer rows.Close()

	perDay := make(map[string]int64)
	for rows.Next() {
		var (
			day   string
			count int64
		)
		if err := rows.Scan(&day, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan daily views", err)
		}
		perDay[day] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate daily views", err)
	}
	return perDay, nil
}

func (s *AnalyticsReadStore) CountPageViews(ctx context.Context, since time.Time) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM analytics_events
		WHERE event_type = 'page_view' AND created_at >= $1
	`
	var count int64
	if err := s.pool.QueryRow(ctx, query, since).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count page views", err)
	}
	return count, nil
}

func (s *AnalyticsReadStore) TopPages(ctx context.Context, since time.Time, limit int32) ([]queries.PageCount, error) {
	const query = `
		SELECT COALESCE(page, ''), COUNT(*)
		FROM analytics_events
		WHERE event_type = 'page_view' AND created_at >= $1
		GROUP BY page
		ORDER BY 2 DESC
		LIMIT $2
	`
	return s.queryPageCounts(ctx, query, since, limit)
}

func (s *AnalyticsReadStore) ButtonClicks(ctx context.Context, since time.Time) ([]queries.EventCount, error) {
	const query = `
		SELECT event_type, COALESCE(page, ''), COUNT(*)
		FROM analytics_events
		WHERE event_type <> 'page_view' AND created_at >= $1
		GROUP BY event_type, page
		ORDER BY 3 DESC
	`
	rows, err := s.pool.Query(ctx, query, since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate clicks", err)
	}
	defer rows.Close()

	counts := make([]queries.EventCount, 0)
	for rows.Next() {
		var c queries.EventCount
		if err := rows.Scan(&c.EventType, &c.Page, &c.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan clicks", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate clicks", err)
	}
	return counts, nil
}

func (s *AnalyticsReadStore) queryPageCounts(ctx context.Context, query string, args ...any) ([]queries.PageCount, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate page counts", err)
	}
	defer rows.Close()

	counts := make([]queries.PageCount, 0)
	for rows.Next() {
		var c queries.PageCount
		if err := rows.Scan(&c.Page, &c.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan page count", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate page counts", err)
	}
	return counts, nil
}
