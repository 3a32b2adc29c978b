package request

type CreateDeliverableRequest struct {
	ProductSlug string `json:"product_slug" binding:"required"`
	Label       string `json:"label" binding:"required"`
	FileURL     string `json:"file_url" binding:"required"`
	SortOrder   int32  `json:"sort_order"`
}
