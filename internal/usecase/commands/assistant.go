package commands

import (
	"context"

	"oficina-criativa/internal/pkg/config"
	"oficina-criativa/internal/pkg/errs"
)

var (
	ErrUnknownAssistantAction = errs.New("unknown assistant action")
	ErrAssistantNotConfigured = errs.New("assistant not configured")
	ErrAssistantGateway       = errs.New("assistant gateway failed")
)

const (
	ActionSuggestTheme = "suggest-theme"
	ActionRefineChat   = "refine-chat"
	ActionGenerate     = "generate"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type AssistantParams struct {
	Action         string
	Ano            string
	Disciplina     string
	TurmaProfile   string
	PreviousThemes []string
	ChatMessages   []ChatMessage
	Objetivo       string
	Category       string
	Duracao        string
	Nivel          string
	Tema           string
}

// CompletionGateway is the chat-completions backend the assistant
// proxies to.
type CompletionGateway interface {
	Complete(ctx context.Context, model string, messages []ChatMessage, maxTokens int) (string, error)
}

type AssistantCommands interface {
	Run(ctx context.Context, params AssistantParams) (string, error)
}

type assistantCommandsImpl struct {
	gateway CompletionGateway
	cfg     config.AIConfig
}

func NewAssistantCommands(gateway CompletionGateway, cfg config.AIConfig) AssistantCommands {
	return &assistantCommandsImpl{
		gateway: gateway,
		cfg:     cfg,
	}
}

// Run dispatches one of the canned pedagogical actions. Each action
// binds its own prompt, token cap and model tier.
func (a *assistantCommandsImpl) Run(ctx context.Context, params AssistantParams) (string, error) {
	if a.cfg.APIKey == "" {
		return "", ErrAssistantNotConfigured
	}

	var (
		messages  []ChatMessage
		maxTokens int
		model     string
	)

	switch params.Action {
	case ActionSuggestTheme:
		messages = suggestThemeMessages(params)
		maxTokens = 100
		model = a.cfg.LightModel
	case ActionRefineChat:
		messages = refineChatMessages(params)
		maxTokens = 500
		model = a.cfg.LightModel
	case ActionGenerate:
		messages = generateMessages(params)
		maxTokens = 3000
		model = a.cfg.Model
	default:
		return "", ErrUnknownAssistantAction
	}

	content, err := a.gateway.Complete(ctx, model, messages, maxTokens)
	if err != nil {
		return "", errs.Mark(err, ErrAssistantGateway)
	}

	return content, nil
}
