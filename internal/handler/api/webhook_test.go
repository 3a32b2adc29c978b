//go:build unit

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"oficina-criativa/internal/domain/purchase"
	"oficina-criativa/internal/infra/metrics"
	"oficina-criativa/internal/pkg/config"
	"oficina-criativa/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type memoryPurchaseRepo struct {
	created []*purchase.Purchase
	byTxID  map[string]bool
}

func (m *memoryPurchaseRepo) Create(_ context.Context, p *purchase.Purchase) error {
	m.created = append(m.created, p)
	if !p.TransactionID().IsZero() {
		m.byTxID[p.TransactionID().Value()] = true
	}
	return nil
}

func (m *memoryPurchaseRepo) ExistsByTransactionID(_ context.Context, transactionID string) (bool, error) {
	return m.byTxID[transactionID], nil
}

type WebhookHandlerSuite struct {
	suite.Suite
	repo    *memoryPurchaseRepo
	metrics *metrics.Metrics
	router  *gin.Engine
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerSuite))
}

func (s *WebhookHandlerSuite) SetupTest() {
	s.setupWithSecret("test-hottok")
}

func (s *WebhookHandlerSuite) setupWithSecret(secret string) {
	gin.SetMode(gin.TestMode)

	s.repo = &memoryPurchaseRepo{byTxID: map[string]bool{}}
	s.metrics = metrics.New()

	handler := NewWebhookHandler(
		commands.NewWebhookCommands(s.repo),
		config.HotmartConfig{WebhookSecret: secret},
		s.metrics,
	)

	s.router = gin.New()
	s.router.POST("/api/webhooks/hotmart", handler.HandleHotmart)
}

func (s *WebhookHandlerSuite) post(body, hottok string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/hotmart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if hottok != "" {
		req.Header.Set("X-Hotmart-Hottok", hottok)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *WebhookHandlerSuite) deliveries(outcome string) float64 {
	return promtestutil.ToFloat64(s.metrics.WebhookDeliveries.WithLabelValues(outcome))
}

const approvedBody = `{
	"event": "PURCHASE_APPROVED",
	"data": {
		"buyer": {"email": "Ana@Example.COM "},
		"product": {"name": "Painel das Palavras"},
		"purchase": {"transaction": "TX1"}
	}
}`

func (s *WebhookHandlerSuite) TestApprovedDeliveryIsRecorded() {
	w := s.post(approvedBody, "test-hottok")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"ok": true}`, w.Body.String())

	s.Require().Len(s.repo.created, 1)
	rec := s.repo.created[0]
	s.Equal("ana@example.com", rec.BuyerEmail().Value())
	s.Equal("painel-das-palavras", rec.ProductSlug())
	s.Equal("TX1", rec.TransactionID().Value())
	s.Equal(1.0, s.deliveries("recorded"))
}

func (s *WebhookHandlerSuite) TestRedeliveryIsAcknowledgedAsDuplicate() {
	first := s.post(approvedBody, "test-hottok")
	s.Equal(http.StatusOK, first.Code)

	second := s.post(approvedBody, "test-hottok")
	s.Equal(http.StatusOK, second.Code)
	s.JSONEq(`{"ok": true, "duplicate": true}`, second.Body.String())

	s.Len(s.repo.created, 1)
	s.Equal(1.0, s.deliveries("recorded"))
	s.Equal(1.0, s.deliveries("duplicate"))
}

func (s *WebhookHandlerSuite) TestMissingSecretIsServerError() {
	s.setupWithSecret("")

	w := s.post(approvedBody, "anything")

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Contains(w.Body.String(), "Webhook not configured")
	s.Empty(s.repo.created)
	s.Equal(1.0, s.deliveries("failed"))
}

func (s *WebhookHandlerSuite) TestBadHottokIsUnauthorized() {
	w := s.post(approvedBody, "wrong-secret")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Empty(s.repo.created)
	s.Equal(1.0, s.deliveries("rejected"))
}

func (s *WebhookHandlerSuite) TestMissingHottokIsUnauthorized() {
	w := s.post(approvedBody, "")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Empty(s.repo.created)
}

func (s *WebhookHandlerSuite) TestAuthRunsBeforeBodyParse() {
	w := s.post(`{"event": "PURCHASE_APPROVED"`, "wrong-secret")

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *WebhookHandlerSuite) TestMalformedJSONIsBadRequest() {
	w := s.post(`{"event": "PURCHASE_APPROVED"`, "test-hottok")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "Invalid JSON payload")
	s.Equal(1.0, s.deliveries("rejected"))
}

func (s *WebhookHandlerSuite) TestMissingBuyerEmailIsBadRequest() {
	body := `{
		"event": "PURCHASE_APPROVED",
		"data": {"product": {"name": "Painel das Palavras"}}
	}`

	w := s.post(body, "test-hottok")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "Missing or invalid buyer email")
}

func (s *WebhookHandlerSuite) TestMalformedBuyerEmailIsBadRequest() {
	body := `{
		"event": "PURCHASE_APPROVED",
		"data": {
			"buyer": {"email": "not-an-email"},
			"product": {"name": "Painel das Palavras"}
		}
	}`

	w := s.post(body, "test-hottok")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "Missing or invalid buyer email")
}

func (s *WebhookHandlerSuite) TestMissingProductNameIsBadRequest() {
	body := `{
		"event": "PURCHASE_APPROVED",
		"data": {"buyer": {"email": "ana@example.com"}}
	}`

	w := s.post(body, "test-hottok")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "Missing product name")
}

func (s *WebhookHandlerSuite) TestNonApprovedEventIsAcknowledgedAndIgnored() {
	body := `{
		"event": "PURCHASE_REFUNDED",
		"data": {
			"buyer": {"email": "ana@example.com"},
			"product": {"name": "Painel das Palavras"},
			"purchase": {"transaction": "TX2"}
		}
	}`

	w := s.post(body, "test-hottok")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"ok": true, "ignored": true}`, w.Body.String())
	s.Empty(s.repo.created)
	s.Equal(1.0, s.deliveries("ignored"))
}

func (s *WebhookHandlerSuite) TestUnknownJSONFieldsAreTolerated() {
	body := `{
		"event": "PURCHASE_APPROVED",
		"id": "hook-123",
		"creation_date": 1725000000000,
		"data": {
			"buyer": {"email": "ana@example.com", "name": "Ana"},
			"product": {"name": "Painel das Palavras", "id": 42},
			"purchase": {"transaction": "TX3", "price": {"value": 10}}
		}
	}`

	w := s.post(body, "test-hottok")

	s.Equal(http.StatusOK, w.Code)
	s.Require().Len(s.repo.created, 1)
	s.Equal("TX3", s.repo.created[0].TransactionID().Value())
}
