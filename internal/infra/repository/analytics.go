package repository

import (
	"context"

	"oficina-criativa/internal/infra"
	"oficina-criativa/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

func (r *AnalyticsRepository) InsertEvent(ctx context.Context, params commands.TrackEventParams) error {
	const query = `
		INSERT INTO analytics_events (id, event_type, page, session_id, metadata)
		VALUES ($1, $2, $3, $4, $5)
	`
	metadata := params.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	_, err := r.pool.Exec(ctx, query,
		uuid.New(),
		params.EventType,
		nullIfEmpty(params.Page),
		nullIfEmpty(params.SessionID),
		metadata,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert analytics event", err)
	}
	return nil
}
