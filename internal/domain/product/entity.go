package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySlug = errors.New("product slug is empty")
	ErrEmptyName = errors.New("product name is empty")
)

type FAQ struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// Product is a catalog entry. Display fields follow the storefront schema;
// only slug and name are structurally required.
type Product struct {
	id                  uuid.UUID
	slug                string
	name                string
	priceText           string
	shortDescription    string
	description         string
	coverImageURL       string
	galleryImageURLs    []string
	benefits            []string
	faqs                []FAQ
	hotmartCheckoutURL  string
	wistiaMediaID       string
	wistiaAspect        string
	wistiaMediaID2      string
	wistiaAspect2       string
	videoDividerText    string
	drivePreviewFolder  string
	isActive            bool
	sortOrder           int32
	createdAt           time.Time
	updatedAt           time.Time
}

type Attributes struct {
	Slug               string
	Name               string
	PriceText          string
	ShortDescription   string
	Description        string
	CoverImageURL      string
	GalleryImageURLs   []string
	Benefits           []string
	FAQs               []FAQ
	HotmartCheckoutURL string
	WistiaMediaID      string
	WistiaAspect       string
	WistiaMediaID2     string
	WistiaAspect2      string
	VideoDividerText   string
	DrivePreviewFolder string
	IsActive           bool
	SortOrder          int32
}

func New(attrs Attributes) (*Product, error) {
	if strings.TrimSpace(attrs.Slug) == "" {
		return nil, ErrEmptySlug
	}
	if strings.TrimSpace(attrs.Name) == "" {
		return nil, ErrEmptyName
	}

	return &Product{
		id:                 uuid.New(),
		slug:               attrs.Slug,
		name:               attrs.Name,
		priceText:          attrs.PriceText,
		shortDescription:   attrs.ShortDescription,
		description:        attrs.Description,
		coverImageURL:      attrs.CoverImageURL,
		galleryImageURLs:   attrs.GalleryImageURLs,
		benefits:           attrs.Benefits,
		faqs:               attrs.FAQs,
		hotmartCheckoutURL: attrs.HotmartCheckoutURL,
		wistiaMediaID:      attrs.WistiaMediaID,
		wistiaAspect:       attrs.WistiaAspect,
		wistiaMediaID2:     attrs.WistiaMediaID2,
		wistiaAspect2:      attrs.WistiaAspect2,
		videoDividerText:   attrs.VideoDividerText,
		drivePreviewFolder: attrs.DrivePreviewFolder,
		isActive:           attrs.IsActive,
		sortOrder:          attrs.SortOrder,
	}, nil
}

func (p *Product) ID() uuid.UUID              { return p.id }
func (p *Product) Slug() string               { return p.slug }
func (p *Product) Name() string               { return p.name }
func (p *Product) PriceText() string          { return p.priceText }
func (p *Product) ShortDescription() string   { return p.shortDescription }
func (p *Product) Description() string        { return p.description }
func (p *Product) CoverImageURL() string      { return p.coverImageURL }
func (p *Product) GalleryImageURLs() []string { return p.galleryImageURLs }
func (p *Product) Benefits() []string         { return p.benefits }
func (p *Product) FAQs() []FAQ                { return p.faqs }
func (p *Product) HotmartCheckoutURL() string { return p.hotmartCheckoutURL }
func (p *Product) WistiaMediaID() string      { return p.wistiaMediaID }
func (p *Product) WistiaAspect() string       { return p.wistiaAspect }
func (p *Product) WistiaMediaID2() string     { return p.wistiaMediaID2 }
func (p *Product) WistiaAspect2() string      { return p.wistiaAspect2 }
func (p *Product) VideoDividerText() string   { return p.videoDividerText }
func (p *Product) DrivePreviewFolder() string { return p.drivePreviewFolder }
func (p *Product) IsActive() bool             { return p.isActive }
func (p *Product) SortOrder() int32           { return p.sortOrder }
func (p *Product) CreatedAt() time.Time       { return p.createdAt }
func (p *Product) UpdatedAt() time.Time       { return p.updatedAt }
