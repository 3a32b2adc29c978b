package queries

import (
	"context"

	"oficina-criativa/internal/pkg/errs"
)

// ErrDeliverableAccessDenied is returned when the caller has no approved
// purchase for the requested product.
var ErrDeliverableAccessDenied = errs.New("no purchase grants access to deliverables")

type DeliverableQueries interface {
	// ListForBuyer returns the deliverables of a product, gated on the buyer
	// owning an approved purchase of it.
	ListForBuyer(ctx context.Context, email, productSlug string) ([]*DeliverableView, error)
	ListBySlug(ctx context.Context, productSlug string) ([]*DeliverableView, error)
}

type DeliverableReadStore interface {
	FindByProductSlug(ctx context.Context, productSlug string) ([]*DeliverableView, error)
}

type deliverableQueriesImpl struct {
	readStore DeliverableReadStore
	purchases PurchaseReadStore
}

func NewDeliverableQueries(readStore DeliverableReadStore, purchases PurchaseReadStore) DeliverableQueries {
	return &deliverableQueriesImpl{
		readStore: readStore,
		purchases: purchases,
	}
}

func (q *deliverableQueriesImpl) ListForBuyer(ctx context.Context, email, productSlug string) ([]*DeliverableView, error) {
	ok, err := q.purchases.ExistsForEmailAndSlug(ctx, email, productSlug)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDeliverableAccessDenied
	}

	return q.readStore.FindByProductSlug(ctx, productSlug)
}

func (q *deliverableQueriesImpl) ListBySlug(ctx context.Context, productSlug string) ([]*DeliverableView, error) {
	return q.readStore.FindByProductSlug(ctx, productSlug)
}
