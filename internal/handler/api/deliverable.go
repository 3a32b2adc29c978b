package api

import (
	"errors"
	"net/http"

	reqdto "oficina-criativa/internal/handler/dto/request"
	"oficina-criativa/internal/usecase/commands"
	"oficina-criativa/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DeliverableHandler struct {
	deliverableQueries  queries.DeliverableQueries
	deliverableCommands commands.DeliverableCommands
	userQueries         queries.UserQueries
}

func NewDeliverableHandler(deliverableQueries queries.DeliverableQueries, deliverableCommands commands.DeliverableCommands, userQueries queries.UserQueries) *DeliverableHandler {
	return &DeliverableHandler{
		deliverableQueries:  deliverableQueries,
		deliverableCommands: deliverableCommands,
		userQueries:         userQueries,
	}
}

// @Summary Product deliverables
// @Description Lists a product's files; the caller must own an approved purchase
// @Tags deliverables
// @Security BearerAuth
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {array} queries.DeliverableView
// @Failure 403 {object} map[string]string
// @Router /products/{slug}/deliverables [get]
func (h *DeliverableHandler) ListForBuyer(c *gin.Context) {
	email, ok := callerEmail(c, h.userQueries)
	if !ok {
		return
	}

	views, err := h.deliverableQueries.ListForBuyer(c.Request.Context(), email, c.Param("slug"))
	if err != nil {
		if errors.Is(err, queries.ErrDeliverableAccessDenied) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "No purchase grants access to this product",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary List deliverables
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {array} queries.DeliverableView
// @Router /admin/products/{slug}/deliverables [get]
func (h *DeliverableHandler) ListAdmin(c *gin.Context) {
	views, err := h.deliverableQueries.ListBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create deliverable
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateDeliverableRequest true "Deliverable"
// @Success 201 {object} map[string]string
// @Router /admin/deliverables [post]
func (h *DeliverableHandler) Create(c *gin.Context) {
	var req reqdto.CreateDeliverableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.CreateDeliverableParams{
		ProductSlug: req.ProductSlug,
		Label:       req.Label,
		FileURL:     req.FileURL,
		SortOrder:   req.SortOrder,
	}
	id, err := h.deliverableCommands.Create(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidDeliverable) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid deliverable data",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Delete deliverable
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Deliverable id"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/deliverables/{id} [delete]
func (h *DeliverableHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid deliverable id",
		})
		return
	}

	if err := h.deliverableCommands.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrDeliverableNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Deliverable not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
