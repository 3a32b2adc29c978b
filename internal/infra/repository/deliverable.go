package repository

import (
	"context"

	"oficina-criativa/internal/infra"
	"oficina-criativa/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DeliverableRepository struct {
	pool *pgxpool.Pool
}

func NewDeliverableRepository(pool *pgxpool.Pool) *DeliverableRepository {
	return &DeliverableRepository{pool: pool}
}

func (r *DeliverableRepository) Create(ctx context.Context, id uuid.UUID, params commands.CreateDeliverableParams) error {
	const query = `
		INSERT INTO deliverables (id, product_slug, label, file_url, sort_order)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query, id, params.ProductSlug, params.Label, params.FileURL, params.SortOrder)
	if err != nil {
		return infra.WrapRepoErr("failed to insert deliverable", err)
	}
	return nil
}

func (r *DeliverableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM deliverables WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete deliverable", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("deliverable not found", nil, infra.KindNotFound)
	}
	return nil
}
