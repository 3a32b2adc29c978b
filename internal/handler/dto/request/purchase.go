package request

type GrantPurchaseRequest struct {
	Email       string `json:"email" binding:"required"`
	ProductSlug string `json:"product_slug" binding:"required"`
	ProductName string `json:"product_name" binding:"required"`
}
