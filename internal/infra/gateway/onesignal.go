package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"oficina-criativa/internal/pkg/config"
	"oficina-criativa/internal/pkg/errs"
	"oficina-criativa/internal/usecase/commands"
)

const onesignalEndpoint = "https://onesignal.com/api/v1/notifications"

// OneSignalClient talks to the OneSignal REST API for both push
// broadcasts and magic-link emails.
type OneSignalClient struct {
	cfg        config.OneSignalConfig
	httpClient *http.Client
	endpoint   string
}

func NewOneSignalClient(cfg config.OneSignalConfig) *OneSignalClient {
	return &OneSignalClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		endpoint:   onesignalEndpoint,
	}
}

func (c *OneSignalClient) SendToAll(ctx context.Context, title, message string) error {
	if c.cfg.RESTAPIKey == "" || c.cfg.AppID == "" {
		return commands.ErrPushNotConfigured
	}

	payload := map[string]any{
		"app_id":            c.cfg.AppID,
		"included_segments": []string{"All"},
		"headings":          map[string]string{"en": title},
		"contents":          map[string]string{"en": message},
		"url":               c.cfg.SiteURL,
	}
	return c.post(ctx, payload)
}

func (c *OneSignalClient) SendLoginLink(ctx context.Context, email, token string) error {
	if c.cfg.RESTAPIKey == "" || c.cfg.AppID == "" {
		return commands.ErrPushNotConfigured
	}

	query := url.Values{}
	query.Set("email", email)
	query.Set("token", token)
	loginURL := fmt.Sprintf("%s/entrar?%s", c.cfg.SiteURL, query.Encode())
	payload := map[string]any{
		"app_id":               c.cfg.AppID,
		"include_email_tokens": []string{email},
		"email_subject":        "O seu acesso à Oficina Criativa",
		"email_body": fmt.Sprintf(
			"<p>Olá!</p><p>Clique no link para aceder às suas compras:</p><p><a href=%q>Entrar na Oficina Criativa</a></p><p>O link expira em 15 minutos.</p>",
			loginURL,
		),
	}
	return c.post(ctx, payload)
}

func (c *OneSignalClient) post(ctx context.Context, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode onesignal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build onesignal request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.cfg.RESTAPIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "onesignal request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errs.New(fmt.Sprintf("onesignal returned %d: %s", resp.StatusCode, string(raw)))
	}
	return nil
}
