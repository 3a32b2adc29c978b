package readstore

import (
	"context"

	"oficina-criativa/internal/infra"
	"oficina-criativa/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `
	id, slug, name, price_text, short_description, description,
	cover_image_url, gallery_image_urls, benefits, faqs,
	hotmart_checkout_url, wistia_media_id, wistia_aspect,
	wistia_media_id2, wistia_aspect2, video_divider_text,
	drive_preview_folder_id, is_active, sort_order, created_at, updated_at
`

type ProductReadStore struct {
	pool *pgxpool.Pool
}

func NewProductReadStore(pool *pgxpool.Pool) *ProductReadStore {
	return &ProductReadStore{pool: pool}
}

func (s *ProductReadStore) FindActive(ctx context.Context) ([]*queries.ProductView, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active ORDER BY sort_order, name`
	return s.queryProducts(ctx, query)
}

func (s *ProductReadStore) FindAll(ctx context.Context) ([]*queries.ProductView, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY sort_order, name`
	return s.queryProducts(ctx, query)
}

func (s *ProductReadStore) FindBySlug(ctx context.Context, slug string) (*queries.ProductView, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`
	return s.queryProduct(ctx, query, slug)
}

func (s *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return s.queryProduct(ctx, query, id)
}

func (s *ProductReadStore) queryProduct(ctx context.Context, query string, arg any) (*queries.ProductView, error) {
	row := s.pool.QueryRow(ctx, query, arg)
	view, err := scanProduct(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read product", err)
	}
	return view, nil
}

func (s *ProductReadStore) queryProducts(ctx context.Context, query string, args ...any) ([]*queries.ProductView, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	views := make([]*queries.ProductView, 0)
	for rows.Next() {
		view, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	return views, nil
}

func scanProduct(row pgx.Row) (*queries.ProductView, error) {
	var v queries.ProductView
	err := row.Scan(
		&v.ID,
		&v.Slug,
		&v.Name,
		&v.PriceText,
		&v.ShortDescription,
		&v.Description,
		&v.CoverImageURL,
		&v.GalleryImageURLs,
		&v.Benefits,
		&v.FAQs,
		&v.HotmartCheckoutURL,
		&v.WistiaMediaID,
		&v.WistiaAspect,
		&v.WistiaMediaID2,
		&v.WistiaAspect2,
		&v.VideoDividerText,
		&v.DrivePreviewFolder,
		&v.IsActive,
		&v.SortOrder,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
