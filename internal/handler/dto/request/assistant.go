package request

type AssistantMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type AssistantRequest struct {
	Action         string             `json:"action" binding:"required"`
	Ano            string             `json:"ano"`
	Disciplina     string             `json:"disciplina"`
	TurmaProfile   string             `json:"turmaProfile"`
	PreviousThemes []string           `json:"previousThemes"`
	ChatMessages   []AssistantMessage `json:"chatMessages"`
	Objetivo       string             `json:"objetivo"`
	Category       string             `json:"category"`
	Duracao        string             `json:"duracao"`
	Nivel          string             `json:"nivel"`
	Tema           string             `json:"tema"`
}
