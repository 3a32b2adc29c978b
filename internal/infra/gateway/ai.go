package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"oficina-criativa/internal/pkg/config"
	"oficina-criativa/internal/pkg/errs"
	"oficina-criativa/internal/usecase/commands"
)

// AIClient proxies chat completions to an OpenAI-compatible gateway.
type AIClient struct {
	cfg        config.AIConfig
	httpClient *http.Client
}

func NewAIClient(cfg config.AIConfig) *AIClient {
	return &AIClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type completionRequest struct {
	Model     string                 `json:"model"`
	Messages  []commands.ChatMessage `json:"messages"`
	MaxTokens int                    `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *AIClient) Complete(ctx context.Context, model string, messages []commands.ChatMessage, maxTokens int) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:     model,
		Messages:  messages,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to encode completion request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GatewayURL, bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "failed to build completion request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "completion request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", errs.New(fmt.Sprintf("ai gateway returned %d: %s", resp.StatusCode, string(raw)))
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errs.Wrap(err, "failed to decode completion response")
	}

	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return parsed.Choices[0].Message.Content, nil
}
