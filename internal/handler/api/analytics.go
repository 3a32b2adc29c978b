package api

import (
	"errors"
	"net/http"

	reqdto "oficina-criativa/internal/handler/dto/request"
	"oficina-criativa/internal/usecase/commands"
	"oficina-criativa/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsCommands commands.AnalyticsCommands
	analyticsQueries  queries.AnalyticsQueries
}

func NewAnalyticsHandler(analyticsCommands commands.AnalyticsCommands, analyticsQueries queries.AnalyticsQueries) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsCommands: analyticsCommands,
		analyticsQueries:  analyticsQueries,
	}
}

// @Summary Track event
// @Description Fire-and-forget client event ingestion
// @Tags analytics
// @Accept json
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /events [post]
func (h *AnalyticsHandler) Track(c *gin.Context) {
	var req reqdto.TrackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "event_type required",
		})
		return
	}

	params := commands.TrackEventParams{
		EventType: req.EventType,
		Page:      req.Page,
		SessionID: req.SessionID,
		Metadata:  req.Metadata,
	}
	if err := h.analyticsCommands.Track(c.Request.Context(), params); err != nil {
		if errors.Is(err, commands.ErrInvalidEvent) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "event_type required",
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

// @Summary Analytics summary
// @Description Live sessions, daily views, top pages and button clicks
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AnalyticsSummary
// @Router /admin/analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.analyticsQueries.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, summary)
}
