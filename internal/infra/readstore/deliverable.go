package readstore

import (
	"context"

	"oficina-criativa/internal/infra"
	"oficina-criativa/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DeliverableReadStore struct {
	pool *pgxpool.Pool
}

func NewDeliverableReadStore(pool *pgxpool.Pool) *DeliverableReadStore {
	return &DeliverableReadStore{pool: pool}
}

func (s *DeliverableReadStore) FindByProductSlug(ctx context.Context, productSlug string) ([]*queries.DeliverableView, error) {
	const query = `
		SELECT id, product_slug, label, file_url, sort_order, created_at
		FROM deliverables
		WHERE product_slug = $1
		ORDER BY sort_order, label
	`
	rows, err := s.pool.Query(ctx, query, productSlug)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deliverables", err)
	}
	defer rows.Close()

	views := make([]*queries.DeliverableView, 0)
	for rows.Next() {
		var v queries.DeliverableView
		if err := rows.Scan(&v.ID, &v.ProductSlug, &v.Label, &v.FileURL, &v.SortOrder, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan deliverable", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list deliverables", err)
	}
	return views, nil
}
