//go:build unit

package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina-criativa/internal/pkg/config"
	"oficina-criativa/internal/usecase/commands"

	"github.com/stretchr/testify/suite"
)

type AIClientSuite struct {
	suite.Suite
}

func TestAIClientSuite(t *testing.T) {
	suite.Run(t, new(AIClientSuite))
}

func (s *AIClientSuite) TestCompleteSendsModelAndBearer() {
	var gotAuth string
	var gotBody completionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "Os animais da quinta"}},
			},
		})
	}))
	defer server.Close()

	client := NewAIClient(config.AIConfig{GatewayURL: server.URL, APIKey: "secret"})
	content, err := client.Complete(context.Background(), "light-model", []commands.ChatMessage{
		{Role: "user", Content: "Ano: 2\nDisciplina: Estudo do Meio"},
	}, 100)

	s.Require().NoError(err)
	s.Equal("Os animais da quinta", content)
	s.Equal("Bearer secret", gotAuth)
	s.Equal("light-model", gotBody.Model)
	s.Equal(100, gotBody.MaxTokens)
}

func (s *AIClientSuite) TestCompleteUpstreamError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewAIClient(config.AIConfig{GatewayURL: server.URL, APIKey: "secret"})
	_, err := client.Complete(context.Background(), "model", nil, 10)
	s.Error(err)
}

func (s *AIClientSuite) TestCompleteEmptyChoices() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewAIClient(config.AIConfig{GatewayURL: server.URL, APIKey: "secret"})
	content, err := client.Complete(context.Background(), "model", nil, 10)
	s.Require().NoError(err)
	s.Empty(content)
}
