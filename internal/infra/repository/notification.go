package repository

import (
	"context"

	"oficina-criativa/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) Create(ctx context.Context, id uuid.UUID, title, message string, sentBy uuid.UUID) error {
	const query = `
		INSERT INTO notification_messages (id, title, message, sent_by)
		VALUES ($1, $2, $3, $4)
	`
	var sender *uuid.UUID
	if sentBy != uuid.Nil {
		sender = &sentBy
	}
	if _, err := r.pool.Exec(ctx, query, id, title, message, sender); err != nil {
		return infra.WrapRepoErr("failed to insert notification message", err)
	}
	return nil
}
