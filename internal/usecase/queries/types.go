package queries

import (
	"time"

	"oficina-criativa/internal/domain/product"

	"github.com/google/uuid"
)

// ProductView represents read-optimized product data
type ProductView struct {
	ID                 uuid.UUID     `json:"id"`
	Slug               string        `json:"slug"`
	Name               string        `json:"name"`
	PriceText          string        `json:"price_text"`
	ShortDescription   string        `json:"short_description"`
	Description        string        `json:"description"`
	CoverImageURL      string        `json:"cover_image_url"`
	GalleryImageURLs   []string      `json:"gallery_image_urls"`
	Benefits           []string      `json:"benefits"`
	FAQs               []product.FAQ `json:"faqs"`
	HotmartCheckoutURL string        `json:"hotmart_checkout_url"`
	WistiaMediaID      *string       `json:"wistia_media_id,omitempty"`
	WistiaAspect       *string       `json:"wistia_aspect,omitempty"`
	WistiaMediaID2     *string       `json:"wistia_media_id2,omitempty"`
	WistiaAspect2      *string       `json:"wistia_aspect2,omitempty"`
	VideoDividerText   *string       `json:"video_divider_text,omitempty"`
	DrivePreviewFolder *string       `json:"drive_preview_folder_id,omitempty"`
	IsActive           bool          `json:"is_active"`
	SortOrder          int32         `json:"sort_order"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// PurchaseView represents read-optimized purchase data
type PurchaseView struct {
	ID            uuid.UUID `json:"id"`
	BuyerEmail    string    `json:"buyer_email"`
	ProductSlug   string    `json:"product_slug"`
	ProductName   string    `json:"product_name"`
	TransactionID *string   `json:"transaction_id,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// DeliverableView represents read-optimized deliverable data
type DeliverableView struct {
	ID          uuid.UUID `json:"id"`
	ProductSlug string    `json:"product_slug"`
	Label       string    `json:"label"`
	FileURL     string    `json:"file_url"`
	SortOrder   int32     `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// NotificationMessageView represents a previously sent push notification
type NotificationMessageView struct {
	ID      uuid.UUID  `json:"id"`
	Title   string     `json:"title"`
	Message string     `json:"message"`
	SentBy  *uuid.UUID `json:"sent_by,omitempty"`
	SentAt  time.Time  `json:"sent_at"`
}

// PageCount pairs a page with an aggregate count
type PageCount struct {
	Page  string `json:"page"`
	Count int64  `json:"count"`
}

// DailyCount pairs a calendar day (YYYY-MM-DD) with an aggregate count
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// EventCount pairs an event type and page with an aggregate count
type EventCount struct {
	EventType string `json:"event_type"`
	Page      string `json:"page"`
	Count     int64  `json:"count"`
}

// AnalyticsSummary is the admin dashboard aggregate
type AnalyticsSummary struct {
	LiveNow      []PageCount  `json:"live_now"`
	DailyViews   []DailyCount `json:"daily_views"`
	TodayTotal   int64        `json:"today_total"`
	WeekTotal    int64        `json:"week_total"`
	TopPages     []PageCount  `json:"top_pages"`
	ButtonClicks []EventCount `json:"button_clicks"`
}
