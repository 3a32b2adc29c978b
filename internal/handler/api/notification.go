package api

import (
	"errors"
	"net/http"

	reqdto "oficina-criativa/internal/handler/dto/request"
	resdto "oficina-criativa/internal/handler/dto/response"
	"oficina-criativa/internal/handler/middleware"
	"oficina-criativa/internal/usecase/commands"
	"oficina-criativa/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationCommands commands.NotificationCommands
	notificationQueries  queries.NotificationQueries
}

func NewNotificationHandler(notificationCommands commands.NotificationCommands, notificationQueries queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{
		notificationCommands: notificationCommands,
		notificationQueries:  notificationQueries,
	}
}

// @Summary Send push notification
// @Description Broadcasts a push notification to all subscribers
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SendNotificationRequest true "Notification"
// @Success 200 {object} resdto.NotificationResponse
// @Failure 500 {object} map[string]string
// @Router /admin/notifications [post]
func (h *NotificationHandler) Send(c *gin.Context) {
	var req reqdto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Title and message required",
		})
		return
	}

	adminID, _ := middleware.GetUserID(c)

	if err := h.notificationCommands.Send(c.Request.Context(), req.Title, req.Message, adminID); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidNotification):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Title and message required",
			})
		case errors.Is(err, commands.ErrPushNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Push delivery not configured",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to send notification",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NotificationResponse{OK: true})
}

// @Summary Scheduled push notification
// @Description Sends a rotating campaign message when inside the morning or evening window
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AutoNotificationResponse
// @Failure 500 {object} map[string]string
// @Router /admin/notifications/auto [post]
func (h *NotificationHandler) SendScheduled(c *gin.Context) {
	result, err := h.notificationCommands.SendScheduled(c.Request.Context())
	if err != nil {
		if errors.Is(err, commands.ErrPushNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Push delivery not configured",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to send notification",
		})
		return
	}

	if result.Skipped != "" {
		c.JSON(http.StatusOK, resdto.AutoNotificationResponse{
			OK:      true,
			Skipped: true,
			Reason:  result.Skipped,
		})
		return
	}

	c.JSON(http.StatusOK, resdto.AutoNotificationResponse{
		OK:      true,
		Title:   result.Title,
		Message: result.Message,
	})
}

// @Summary Notification history
// @Description Recently sent notifications, newest first
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.NotificationMessageView
// @Router /admin/notifications [get]
func (h *NotificationHandler) History(c *gin.Context) {
	views, err := h.notificationQueries.History(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}
