package request

import "oficina-criativa/internal/domain/product"

type FAQItem struct {
	Question string `json:"q" binding:"required"`
	Answer   string `json:"a" binding:"required"`
}

type CreateProductRequest struct {
	Slug               string    `json:"slug" binding:"required"`
	Name               string    `json:"name" binding:"required"`
	PriceText          string    `json:"price_text"`
	ShortDescription   string    `json:"short_description"`
	Description        string    `json:"description"`
	CoverImageURL      string    `json:"cover_image_url"`
	GalleryImageURLs   []string  `json:"gallery_image_urls"`
	Benefits           []string  `json:"benefits"`
	FAQs               []FAQItem `json:"faqs"`
	HotmartCheckoutURL string    `json:"hotmart_checkout_url"`
	WistiaMediaID      string    `json:"wistia_media_id"`
	WistiaAspect       string    `json:"wistia_aspect"`
	WistiaMediaID2     string    `json:"wistia_media_id2"`
	WistiaAspect2      string    `json:"wistia_aspect2"`
	VideoDividerText   string    `json:"video_divider_text"`
	DrivePreviewFolder string    `json:"drive_preview_folder_id"`
	IsActive           *bool     `json:"is_active"`
	SortOrder          int32     `json:"sort_order"`
}

func (r *CreateProductRequest) ToAttributes() product.Attributes {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return product.Attributes{
		Slug:               r.Slug,
		Name:               r.Name,
		PriceText:          r.PriceText,
		ShortDescription:   r.ShortDescription,
		Description:        r.Description,
		CoverImageURL:      r.CoverImageURL,
		GalleryImageURLs:   r.GalleryImageURLs,
		Benefits:           r.Benefits,
		FAQs:               DomainFAQs(r.FAQs),
		HotmartCheckoutURL: r.HotmartCheckoutURL,
		WistiaMediaID:      r.WistiaMediaID,
		WistiaAspect:       r.WistiaAspect,
		WistiaMediaID2:     r.WistiaMediaID2,
		WistiaAspect2:      r.WistiaAspect2,
		VideoDividerText:   r.VideoDividerText,
		DrivePreviewFolder: r.DrivePreviewFolder,
		IsActive:           isActive,
		SortOrder:          r.SortOrder,
	}
}

type UpdateProductRequest struct {
	Name               *string   `json:"name"`
	PriceText          *string   `json:"price_text"`
	ShortDescription   *string   `json:"short_description"`
	Description        *string   `json:"description"`
	CoverImageURL      *string   `json:"cover_image_url"`
	GalleryImageURLs   []string  `json:"gallery_image_urls"`
	Benefits           []string  `json:"benefits"`
	FAQs               []FAQItem `json:"faqs"`
	HotmartCheckoutURL *string   `json:"hotmart_checkout_url"`
	WistiaMediaID      *string   `json:"wistia_media_id"`
	WistiaAspect       *string   `json:"wistia_aspect"`
	WistiaMediaID2     *string   `json:"wistia_media_id2"`
	WistiaAspect2      *string   `json:"wistia_aspect2"`
	VideoDividerText   *string   `json:"video_divider_text"`
	DrivePreviewFolder *string   `json:"drive_preview_folder_id"`
	IsActive           *bool     `json:"is_active"`
	SortOrder          *int32    `json:"sort_order"`
}

// DomainFAQs converts wire FAQ items into domain values. Nil stays nil so
// partial updates can tell "absent" apart from "set to empty".
func DomainFAQs(items []FAQItem) []product.FAQ {
	if items == nil {
		return nil
	}
	faqs := make([]product.FAQ, 0, len(items))
	for _, item := range items {
		faqs = append(faqs, product.FAQ{Question: item.Question, Answer: item.Answer})
	}
	return faqs
}
