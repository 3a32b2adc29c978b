package queries

import (
	"context"

	"oficina-criativa/internal/domain/user"
)

type PurchaseQueries interface {
	ListByEmail(ctx context.Context, email string) ([]*PurchaseView, error)
	// HasAccess reports whether the email owns an approved purchase of the
	// product identified by slug.
	HasAccess(ctx context.Context, email, productSlug string) (bool, error)
	// ListAdmin returns recent purchases, optionally filtered by buyer email.
	ListAdmin(ctx context.Context, emailFilter string) ([]*PurchaseView, error)
}

type PurchaseReadStore interface {
	FindByEmail(ctx context.Context, email string) ([]*PurchaseView, error)
	ExistsForEmailAndSlug(ctx context.Context, email, productSlug string) (bool, error)
	FindRecent(ctx context.Context, emailFilter string, limit int32) ([]*PurchaseView, error)
}

type purchaseQueriesImpl struct {
	readStore PurchaseReadStore
}

func NewPurchaseQueries(readStore PurchaseReadStore) PurchaseQueries {
	return &purchaseQueriesImpl{
		readStore: readStore,
	}
}

func (q *purchaseQueriesImpl) ListByEmail(ctx context.Context, email string) ([]*PurchaseView, error) {
	normalized, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return q.readStore.FindByEmail(ctx, normalized.Value())
}

func (q *purchaseQueriesImpl) HasAccess(ctx context.Context, email, productSlug string) (bool, error) {
	normalized, err := user.NewEmail(email)
	if err != nil {
		return false, err
	}
	return q.readStore.ExistsForEmailAndSlug(ctx, normalized.Value(), productSlug)
}

const adminListLimit = 200

func (q *purchaseQueriesImpl) ListAdmin(ctx context.Context, emailFilter string) ([]*PurchaseView, error) {
	return q.readStore.FindRecent(ctx, emailFilter, adminListLimit)
}
