package readstore

import (
	"context"

	"oficina-criativa/internal/infra"
	"oficina-criativa/internal/pkg/pgconv"
	"oficina-criativa/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PurchaseReadStore struct {
	pool *pgxpool.Pool
}

func NewPurchaseReadStore(pool *pgxpool.Pool) *PurchaseReadStore {
	return &PurchaseReadStore{pool: pool}
}

func (s *PurchaseReadStore) FindByEmail(ctx context.Context, email string) ([]*queries.PurchaseView, error) {
	const query = `
		SELECT id, buyer_email, product_slug, product_name, transaction_id, status, created_at
		FROM purchases
		WHERE buyer_email = $1
		ORDER BY created_at DESC
	`
	return s.queryPurchases(ctx, query, email)
}

func (s *PurchaseReadStore) ExistsForEmailAndSlug(ctx context.Context, email, productSlug string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM purchases
			WHERE buyer_email = $1 AND product_slug = $2 AND status = 'approved'
		)
	`
	var exists bool
	if err := s.pool.QueryRow(ctx, query, email, productSlug).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check purchase access", err)
	}
	return exists, nil
}

func (s *PurchaseReadStore) FindRecent(ctx context.Context, emailFilter string, limit int32) ([]*queries.PurchaseView, error) {
	if emailFilter != "" {
		const query = `
			SELECT id, buyer_email, product_slug, product_name, transaction_id, status, created_at
			FROM purchases
			WHERE buyer_email ILIKE '%' || $1 || '%'
			ORDER BY created_at DESC
			LIMIT $2
		`
		return s.queryPurchases(ctx, query, emailFilter, limit)
	}

	const query = `
		SELECT id, buyer_email, product_slug, product_name, transaction_id, status, created_at
		FROM purchases
		ORDER BY created_at DESC
		LIMIT $1
	`
	return s.queryPurchases(ctx, query, limit)
}

func (s *PurchaseReadStore) queryPurchases(ctx context.Context, query string, args ...any) ([]*queries.PurchaseView, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list purchases", err)
	}
	defer rows.Close()

	views := make([]*queries.PurchaseView, 0)
	for rows.Next() {
		var (
			v             queries.PurchaseView
			transactionID pgtype.Text
		)
		if err := rows.Scan(&v.ID, &v.BuyerEmail, &v.ProductSlug, &v.ProductName, &transactionID, &v.Status, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan purchase", err)
		}
		v.TransactionID = pgconv.StringPtrFromPgtype(transactionID)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list purchases", err)
	}
	return views, nil
}
