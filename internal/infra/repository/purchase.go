package repository

import (
	"context"

	"oficina-criativa/internal/domain/purchase"
	"oficina-criativa/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PurchaseRepository struct {
	pool *pgxpool.Pool
}

func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{pool: pool}
}

// Create inserts a purchase row. The partial unique index on
// transaction_id is the authoritative duplicate guard; a violation
// surfaces as KindDuplicateKey.
func (r *PurchaseRepository) Create(ctx context.Context, p *purchase.Purchase) error {
	const query = `
		INSERT INTO purchases (id, buyer_email, product_slug, product_name, transaction_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		p.ID(),
		p.BuyerEmail().Value(),
		p.ProductSlug(),
		p.ProductName().Value(),
		p.TransactionID().Ptr(),
		p.Status(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert purchase", err)
	}
	return nil
}

func (r *PurchaseRepository) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM purchases WHERE transaction_id = $1
		)
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, transactionID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check transaction id", err)
	}
	return exists, nil
}

func (r *PurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM purchases WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete purchase", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("purchase not found", nil, infra.KindNotFound)
	}
	return nil
}
