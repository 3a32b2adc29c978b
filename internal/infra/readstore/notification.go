package readstore

import (
	"context"

	"oficina-criativa/internal/infra"
	"oficina-criativa/internal/pkg/pgconv"
	"oficina-criativa/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationReadStore struct {
	pool *pgxpool.Pool
}

func NewNotificationReadStore(pool *pgxpool.Pool) *NotificationReadStore {
	return &NotificationReadStore{pool: pool}
}

func (s *NotificationReadStore) FindRecent(ctx context.Context, limit int32) ([]*queries.NotificationMessageView, error) {
	const query = `
		SELECT id, title, message, sent_by, sent_at
		FROM notification_messages
		ORDER BY sent_at DESC
		LIMIT $1
	`
	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	views := make([]*queries.NotificationMessageView, 0)
	for rows.Next() {
		var (
			v      queries.NotificationMessageView
			sentBy pgtype.UUID
			sentAt pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.Title, &v.Message, &sentBy, &sentAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification", err)
		}
		v.SentBy = pgconv.UUIDPtrFromPgtype(sentBy)
		v.SentAt = pgconv.TimeFromPgtype(sentAt)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	return views, nil
}
