package repository

import (
	"context"

	"oficina-criativa/internal/domain/product"
	"oficina-criativa/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	const query = `
		INSERT INTO products (
			id, slug, name, price_text, short_description, description,
			cover_image_url, gallery_image_urls, benefits, faqs,
			hotmart_checkout_url, wistia_media_id, wistia_aspect,
			wistia_media_id2, wistia_aspect2, video_divider_text,
			drive_preview_folder_id, is_active, sort_order
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`
	_, err := r.pool.Exec(ctx, query,
		p.ID(),
		p.Slug(),
		p.Name(),
		p.PriceText(),
		p.ShortDescription(),
		p.Description(),
		p.CoverImageURL(),
		p.GalleryImageURLs(),
		p.Benefits(),
		p.FAQs(),
		p.HotmartCheckoutURL(),
		nullIfEmpty(p.WistiaMediaID()),
		nullIfEmpty(p.WistiaAspect()),
		nullIfEmpty(p.WistiaMediaID2()),
		nullIfEmpty(p.WistiaAspect2()),
		nullIfEmpty(p.VideoDividerText()),
		nullIfEmpty(p.DrivePreviewFolder()),
		p.IsActive(),
		p.SortOrder(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert product", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, attrs product.Attributes) error {
	const query = `
		UPDATE products
		SET name = $2,
			price_text = $3,
			short_description = $4,
			description = $5,
			cover_image_url = $6,
			gallery_image_urls = $7,
			benefits = $8,
			faqs = $9,
			hotmart_checkout_url = $10,
			wistia_media_id = $11,
			wistia_aspect = $12,
			wistia_media_id2 = $13,
			wistia_aspect2 = $14,
			video_divider_text = $15,
			drive_preview_folder_id = $16,
			is_active = $17,
			sort_order = $18,
			updated_at = now()
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		id,
		attrs.Name,
		attrs.PriceText,
		attrs.ShortDescription,
		attrs.Description,
		attrs.CoverImageURL,
		attrs.GalleryImageURLs,
		attrs.Benefits,
		attrs.FAQs,
		attrs.HotmartCheckoutURL,
		nullIfEmpty(attrs.WistiaMediaID),
		nullIfEmpty(attrs.WistiaAspect),
		nullIfEmpty(attrs.WistiaMediaID2),
		nullIfEmpty(attrs.WistiaAspect2),
		nullIfEmpty(attrs.VideoDividerText),
		nullIfEmpty(attrs.DrivePreviewFolder),
		attrs.IsActive,
		attrs.SortOrder,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM products WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
