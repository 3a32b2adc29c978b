package api

import (
	"errors"
	"net/http"

	reqdto "oficina-criativa/internal/handler/dto/request"
	"oficina-criativa/internal/handler/middleware"
	"oficina-criativa/internal/usecase/commands"
	"oficina-criativa/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PurchaseHandler struct {
	purchaseQueries  queries.PurchaseQueries
	purchaseCommands commands.PurchaseCommands
	userQueries      queries.UserQueries
}

func NewPurchaseHandler(purchaseQueries queries.PurchaseQueries, purchaseCommands commands.PurchaseCommands, userQueries queries.UserQueries) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseQueries:  purchaseQueries,
		purchaseCommands: purchaseCommands,
		userQueries:      userQueries,
	}
}

// @Summary My purchases
// @Description Lists the caller's purchases
// @Tags purchases
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.PurchaseView
// @Router /purchases/mine [get]
func (h *PurchaseHandler) Mine(c *gin.Context) {
	email, ok := callerEmail(c, h.userQueries)
	if !ok {
		return
	}

	views, err := h.purchaseQueries.ListByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Check product access
// @Description Reports whether the caller owns an approved purchase of the product
// @Tags purchases
// @Security BearerAuth
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} map[string]bool
// @Router /purchases/access/{slug} [get]
func (h *PurchaseHandler) Access(c *gin.Context) {
	email, ok := callerEmail(c, h.userQueries)
	if !ok {
		return
	}

	hasAccess, err := h.purchaseQueries.HasAccess(c.Request.Context(), email, c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"has_access": hasAccess})
}

// @Summary Grant purchase
// @Description Manually records an approved purchase for a buyer
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.GrantPurchaseRequest true "Grant"
// @Success 201 {object} map[string]string
// @Router /admin/purchases [post]
func (h *PurchaseHandler) Grant(c *gin.Context) {
	var req reqdto.GrantPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	adminID, _ := middleware.GetUserID(c)

	params := commands.GrantPurchaseParams{
		Email:       req.Email,
		ProductSlug: req.ProductSlug,
		ProductName: req.ProductName,
	}
	id, err := h.purchaseCommands.Grant(c.Request.Context(), params, adminID)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidGrant) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid grant data",
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

// @Summary List purchases
// @Description Recent purchases, optionally filtered by buyer email
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param email query string false "Email filter"
// @Success 200 {array} queries.PurchaseView
// @Router /admin/purchases [get]
func (h *PurchaseHandler) ListAdmin(c *gin.Context) {
	views, err := h.purchaseQueries.ListAdmin(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Revoke purchase
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Purchase id"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/purchases/{id} [delete]
func (h *PurchaseHandler) Revoke(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid purchase id",
		})
		return
	}

	if err := h.purchaseCommands.Revoke(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrPurchaseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Purchase not found",
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

// callerEmail resolves the authenticated caller to their stored email.
func callerEmail(c *gin.Context, userQueries queries.UserQueries) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return "", false
	}

	view, err := userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not found",
		})
		return "", false
	}
	return view.Email, true
}
