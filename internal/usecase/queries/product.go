package queries

import (
	"context"

	"oficina-criativa/internal/domain/product"
	"oficina-criativa/internal/infra"
	"oficina-criativa/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProductNotFound = errs.New("product not found")

type ProductQueries interface {
	// ListActive returns the public storefront listing; falls back to the
	// built-in catalog when the products table has no active rows.
	ListActive(ctx context.Context) ([]*ProductView, error)
	GetBySlug(ctx context.Context, slug string) (*ProductView, error)
	// ListAll includes inactive products, for the admin back-office.
	ListAll(ctx context.Context) ([]*ProductView, error)
}

type ProductReadStore interface {
	FindActive(ctx context.Context) ([]*ProductView, error)
	FindBySlug(ctx context.Context, slug string) (*ProductView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	FindAll(ctx context.Context) ([]*ProductView, error)
}

type productQueriesImpl struct {
	readStore ProductReadStore
}

func NewProductQueries(readStore ProductReadStore) ProductQueries {
	return &productQueriesImpl{
		readStore: readStore,
	}
}

func (q *productQueriesImpl) ListActive(ctx context.Context) ([]*ProductView, error) {
	views, err := q.readStore.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return catalogViews(), nil
	}
	return views, nil
}

// catalogViews renders the built-in catalog so a fresh database still
// serves the storefront.
func catalogViews() []*ProductView {
	attrs := product.Catalog()
	views := make([]*ProductView, 0, len(attrs))
	for i, a := range attrs {
		views = append(views, &ProductView{
			Slug:               a.Slug,
			Name:               a.Name,
			PriceText:          a.PriceText,
			ShortDescription:   a.ShortDescription,
			Description:        a.Description,
			CoverImageURL:      a.CoverImageURL,
			GalleryImageURLs:   a.GalleryImageURLs,
			Benefits:           a.Benefits,
			FAQs:               a.FAQs,
			HotmartCheckoutURL: a.HotmartCheckoutURL,
			IsActive:           true,
			SortOrder:          int32(i),
		})
	}
	return views
}

func (q *productQueriesImpl) GetBySlug(ctx context.Context, slug string) (*ProductView, error) {
	view, err := q.readStore.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *productQueriesImpl) ListAll(ctx context.Context) ([]*ProductView, error) {
	return q.readStore.FindAll(ctx)
}
