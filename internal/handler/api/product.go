package api

import (
	"errors"
	"net/http"

	reqdto "oficina-criativa/internal/handler/dto/request"
	"oficina-criativa/internal/handler/httperr"
	"oficina-criativa/internal/usecase/commands"
	"oficina-criativa/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productQueries  queries.ProductQueries
	productCommands commands.ProductCommands
}

func NewProductHandler(productQueries queries.ProductQueries, productCommands commands.ProductCommands) *ProductHandler {
	return &ProductHandler{
		productQueries:  productQueries,
		productCommands: productCommands,
	}
}

// @Summary List products
// @Description Public storefront listing of active products
// @Tags products
// @Produce json
// @Success 200 {array} queries.ProductView
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	views, err := h.productQueries.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list products", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get product
// @Description Public product detail by slug
// @Tags products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} queries.ProductView
// @Failure 404 {object} map[string]string
// @Router /products/{slug} [get]
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	view, err := h.productQueries.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List all products
// @Description Admin listing including inactive products
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.ProductView
// @Router /admin/products [get]
func (h *ProductHandler) ListAll(c *gin.Context) {
	views, err := h.productQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list products", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create product
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateProductRequest true "Product"
// @Success 201 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.productCommands.Create(c.Request.Context(), req.ToAttributes())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateSlug):
			httperr.AbortWithError(c, http.StatusConflict, err, "A product with this slug already exists", nil)
		case errors.Is(err, commands.ErrInvalidProduct):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create product", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update product
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Product id"
// @Param request body reqdto.UpdateProductRequest true "Partial update"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}

	var req reqdto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.productCommands.Update(c.Request.Context(), id, updateProductParams(req)); err != nil {
		if errors.Is(err, commands.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update product", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete product
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Product id"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}

	if err := h.productCommands.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete product", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

func updateProductParams(req reqdto.UpdateProductRequest) commands.UpdateProductParams {
	params := commands.UpdateProductParams{
		Name:               req.Name,
		PriceText:          req.PriceText,
		ShortDescription:   req.ShortDescription,
		Description:        req.Description,
		CoverImageURL:      req.CoverImageURL,
		GalleryImageURLs:   req.GalleryImageURLs,
		Benefits:           req.Benefits,
		HotmartCheckoutURL: req.HotmartCheckoutURL,
		WistiaMediaID:      req.WistiaMediaID,
		WistiaAspect:       req.WistiaAspect,
		WistiaMediaID2:     req.WistiaMediaID2,
		WistiaAspect2:      req.WistiaAspect2,
		VideoDividerText:   req.VideoDividerText,
		DrivePreviewFolder: req.DrivePreviewFolder,
		IsActive:           req.IsActive,
		SortOrder:          req.SortOrder,
	}
	if req.FAQs != nil {
		params.FAQs = reqdto.DomainFAQs(req.FAQs)
	}
	return params
}
