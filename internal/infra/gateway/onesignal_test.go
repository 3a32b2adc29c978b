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

type OneSignalClientSuite struct {
	suite.Suite
}

func TestOneSignalClientSuite(t *testing.T) {
	suite.Run(t, new(OneSignalClientSuite))
}

func (s *OneSignalClientSuite) newClient(cfg config.OneSignalConfig, endpoint string) *OneSignalClient {
	client := NewOneSignalClient(cfg)
	client.endpoint = endpoint
	return client
}

func (s *OneSignalClientSuite) TestSendToAllBroadcasts() {
	var gotAuth string
	var gotPayload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&gotPayload))
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))
	defer server.Close()

	client := s.newClient(config.OneSignalConfig{
		AppID:      "app-id",
		RESTAPIKey: "rest-key",
		SiteURL:    "https://oficinacriativa.app",
	}, server.URL)

	err := client.SendToAll(context.Background(), "Bom dia", "Novidades na loja")
	s.Require().NoError(err)

	s.Equal("Basic rest-key", gotAuth)
	s.Equal("app-id", gotPayload["app_id"])
	s.Equal([]any{"All"}, gotPayload["included_segments"])
	s.Equal(map[string]any{"en": "Bom dia"}, gotPayload["headings"])
}

func (s *OneSignalClientSuite) TestLoginLinkEscapesEmailAndToken() {
	var gotPayload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&gotPayload))
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))
	defer server.Close()

	client := s.newClient(config.OneSignalConfig{
		AppID:      "app-id",
		RESTAPIKey: "rest-key",
		SiteURL:    "https://oficinacriativa.app",
	}, server.URL)

	err := client.SendLoginLink(context.Background(), "ana+turma@example.com", "tok/en==")
	s.Require().NoError(err)

	body, ok := gotPayload["email_body"].(string)
	s.Require().True(ok)
	s.Contains(body, "email=ana%2Bturma%40example.com")
	s.Contains(body, "token=tok%2Fen%3D%3D")
	s.NotContains(body, "email=ana+turma@example.com")
	s.Equal([]any{"ana+turma@example.com"}, gotPayload["include_email_tokens"])
}

func (s *OneSignalClientSuite) TestMissingKeyIsConfigError() {
	client := NewOneSignalClient(config.OneSignalConfig{AppID: "app-id"})

	err := client.SendToAll(context.Background(), "t", "m")
	s.ErrorIs(err, commands.ErrPushNotConfigured)

	err = client.SendLoginLink(context.Background(), "ana@example.com", "token")
	s.ErrorIs(err, commands.ErrPushNotConfigured)
}

func (s *OneSignalClientSuite) TestUpstreamFailure() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad app id", http.StatusBadRequest)
	}))
	defer server.Close()

	client := s.newClient(config.OneSignalConfig{
		AppID:      "app-id",
		RESTAPIKey: "rest-key",
	}, server.URL)

	err := client.SendToAll(context.Background(), "t", "m")
	s.Error(err)
	s.NotErrorIs(err, commands.ErrPushNotConfigured)
}
