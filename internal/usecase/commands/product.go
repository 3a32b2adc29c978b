package commands

import (
	"context"

	"oficina-criativa/internal/domain/product"
	"oficina-criativa/internal/infra"
	"oficina-criativa/internal/pkg/errs"
	"oficina-criativa/internal/pkg/patch"
	"oficina-criativa/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errs.New("product not found")
	ErrDuplicateSlug   = errs.New("product slug already exists")
	ErrInvalidProduct  = errs.New("invalid product")
)

// UpdateProductParams carries a partial update; nil fields keep the stored
// value.
type UpdateProductParams struct {
	Name               *string
	PriceText          *string
	ShortDescription   *string
	Description        *string
	CoverImageURL      *string
	GalleryImageURLs   []string
	Benefits           []string
	FAQs               []product.FAQ
	HotmartCheckoutURL *string
	WistiaMediaID      *string
	WistiaAspect       *string
	WistiaMediaID2     *string
	WistiaAspect2      *string
	VideoDividerText   *string
	DrivePreviewFolder *string
	IsActive           *bool
	SortOrder          *int32
}

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) error
	Update(ctx context.Context, id uuid.UUID, attrs product.Attributes) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductCommands interface {
	Create(ctx context.Context, attrs product.Attributes) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateProductParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productCommandsImpl struct {
	productRepo ProductRepository
	readStore   queries.ProductReadStore
}

func NewProductCommands(productRepo ProductRepository, readStore queries.ProductReadStore) ProductCommands {
	return &productCommandsImpl{
		productRepo: productRepo,
		readStore:   readStore,
	}
}

func (p *productCommandsImpl) Create(ctx context.Context, attrs product.Attributes) (uuid.UUID, error) {
	entity, err := product.New(attrs)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidProduct)
	}

	if err := p.productRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateSlug
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperation)
	}

	return entity.ID(), nil
}

func (p *productCommandsImpl) Update(ctx context.Context, id uuid.UUID, params UpdateProductParams) error {
	current, err := p.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}

	attrs := product.Attributes{
		Slug:               current.Slug, // slug is immutable: purchases reference it
		Name:               patch.Coalesce(params.Name, current.Name),
		PriceText:          patch.Coalesce(params.PriceText, current.PriceText),
		ShortDescription:   patch.Coalesce(params.ShortDescription, current.ShortDescription),
		Description:        patch.Coalesce(params.Description, current.Description),
		CoverImageURL:      patch.Coalesce(params.CoverImageURL, current.CoverImageURL),
		GalleryImageURLs:   current.GalleryImageURLs,
		Benefits:           current.Benefits,
		FAQs:               current.FAQs,
		HotmartCheckoutURL: patch.Coalesce(params.HotmartCheckoutURL, current.HotmartCheckoutURL),
		WistiaMediaID:      patch.Coalesce(params.WistiaMediaID, strValue(current.WistiaMediaID)),
		WistiaAspect:       patch.Coalesce(params.WistiaAspect, strValue(current.WistiaAspect)),
		WistiaMediaID2:     patch.Coalesce(params.WistiaMediaID2, strValue(current.WistiaMediaID2)),
		WistiaAspect2:      patch.Coalesce(params.WistiaAspect2, strValue(current.WistiaAspect2)),
		VideoDividerText:   patch.Coalesce(params.VideoDividerText, strValue(current.VideoDividerText)),
		DrivePreviewFolder: patch.Coalesce(params.DrivePreviewFolder, strValue(current.DrivePreviewFolder)),
		IsActive:           patch.Coalesce(params.IsActive, current.IsActive),
		SortOrder:          patch.Coalesce(params.SortOrder, current.SortOrder),
	}
	if params.GalleryImageURLs != nil {
		attrs.GalleryImageURLs = params.GalleryImageURLs
	}
	if params.Benefits != nil {
		attrs.Benefits = params.Benefits
	}
	if params.FAQs != nil {
		attrs.FAQs = params.FAQs
	}

	if err := p.productRepo.Update(ctx, id, attrs); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}

func (p *productCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := p.productRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}
	return nil
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
