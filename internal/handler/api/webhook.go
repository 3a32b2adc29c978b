package api

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	reqdto "oficina-criativa/internal/handler/dto/request"
	resdto "oficina-criativa/internal/handler/dto/response"
	"oficina-criativa/internal/infra/metrics"
	"oficina-criativa/internal/pkg/config"
	"oficina-criativa/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const hottokHeader = "X-Hotmart-Hottok"

type WebhookHandler struct {
	webhookCommands commands.WebhookCommands
	cfg             config.HotmartConfig
	metrics         *metrics.Metrics
}

func NewWebhookHandler(webhookCommands commands.WebhookCommands, cfg config.HotmartConfig, m *metrics.Metrics) *WebhookHandler {
	return &WebhookHandler{
		webhookCommands: webhookCommands,
		cfg:             cfg,
		metrics:         m,
	}
}

// @Summary Hotmart purchase webhook
// @Description Receives purchase callbacks from Hotmart and records approved sales
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Hotmart-Hottok header string true "Shared webhook secret"
// @Success 200 {object} resdto.WebhookAck
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /webhooks/hotmart [post]
func (h *WebhookHandler) HandleHotmart(c *gin.Context) {
	// The secret gate runs before the body is touched: without a
	// configured secret every delivery is unverifiable.
	if h.cfg.WebhookSecret == "" {
		slog.Error("webhook secret not configured")
		h.metrics.WebhookDeliveries.WithLabelValues("failed").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Webhook not configured",
		})
		return
	}

	provided := c.GetHeader(hottokHeader)
	if subtle.ConstantTimeCompare([]byte(provided), []byte(h.cfg.WebhookSecret)) != 1 {
		slog.Warn("webhook rejected: bad hottok", "client_ip", c.ClientIP())
		h.metrics.WebhookDeliveries.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid webhook token",
		})
		return
	}

	var req reqdto.HotmartWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.WebhookDeliveries.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON payload",
		})
		return
	}

	result, err := h.webhookCommands.ProcessHotmartDelivery(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoBuyerEmail),
			errors.Is(err, commands.ErrInvalidBuyerEmail):
			h.metrics.WebhookDeliveries.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Missing or invalid buyer email",
			})
		case errors.Is(err, commands.ErrNoProductName):
			h.metrics.WebhookDeliveries.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Missing product name",
			})
		default:
			slog.Error("webhook processing failed", "error", err.Error())
			h.metrics.WebhookDeliveries.WithLabelValues("failed").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to record purchase",
			})
		}
		return
	}

	h.metrics.WebhookDeliveries.WithLabelValues(string(result.Outcome)).Inc()

	switch result.Outcome {
	case commands.OutcomeIgnored:
		c.JSON(http.StatusOK, resdto.WebhookAck{OK: true, Ignored: true})
	case commands.OutcomeDuplicate:
		c.JSON(http.StatusOK, resdto.WebhookAck{OK: true, Duplicate: true})
	default:
		c.JSON(http.StatusOK, resdto.WebhookAck{OK: true})
	}
}
