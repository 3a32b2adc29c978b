package commands

import (
	"fmt"
	"strings"
)

// System prompts are European Portuguese on purpose: the audience is
// teachers working with the Portuguese national curriculum.

const generateSystemPrompt = `És assistente pedagógica profissional do sistema educativo português. Geras conteúdo pedagógico estruturado e de alta qualidade.

REGRAS OBRIGATÓRIAS:
- Escreve SEMPRE em Português de Portugal
- NÃO uses marcadores markdown (sem #, *, **, ___, ---)
- Usa texto limpo e bem formatado
- Parágrafos curtos e espaçados
- Linguagem clara, profissional e acessível
- Conteúdo baseado no currículo português real

ESTRUTURA OBRIGATÓRIA:

Começa SEMPRE com:
"Olá! Entendi o que pretende trabalhar com a sua turma. Preparei uma proposta estruturada para si:"

Depois segue EXATAMENTE esta estrutura:

TÍTULO E CONTEXTUALIZAÇÃO
(parágrafo breve)

OBJETIVOS PEDAGÓGICOS
1.
2.
3.

DESENVOLVIMENTO
1.
2.
3.

DIFERENCIAÇÃO PEDAGÓGICA
(como adaptar a diferentes níveis)

ESTRATÉGIA DE AVALIAÇÃO
(como avaliar)

TAREFA DE CASA
(sugestão de tarefa)

ATIVIDADES COMPLEMENTARES
1.
2.
3.`

var generateCategoryNames = map[string]string{
	"planeamento": "Planeamento de Aula",
	"atividade":   "Atividade Pedagógica",
	"avaliacao":   "Avaliação ou Teste",
}

func suggestThemeMessages(p AssistantParams) []ChatMessage {
	var sb strings.Builder
	sb.WriteString("És assistente pedagógica do currículo português. Sugere UM tema concreto e curricular. Responde APENAS com o tema, sem explicações, sem aspas, sem marcadores. Português de Portugal.")
	if len(p.PreviousThemes) > 0 {
		sb.WriteString("\nNão sugirar estes temas: ")
		sb.WriteString(strings.Join(p.PreviousThemes, ", "))
	}
	if p.TurmaProfile != "" {
		sb.WriteString("\nPerfil da turma: ")
		sb.WriteString(p.TurmaProfile)
	}

	return []ChatMessage{
		{Role: "system", Content: sb.String()},
		{Role: "user", Content: fmt.Sprintf("Ano: %s\nDisciplina: %s", p.Ano, p.Disciplina)},
	}
}

func refineChatMessages(p AssistantParams) []ChatMessage {
	system := fmt.Sprintf(
		"És assistente pedagógica. Ajudas a refinar objetivos de aula. Respostas breves, claras, em Português de Portugal. Sem markdown (sem #, *, **). Objetivo atual: %q",
		p.Objetivo,
	)
	if p.TurmaProfile != "" {
		system += "\nPerfil da turma: " + p.TurmaProfile
	}

	messages := make([]ChatMessage, 0, len(p.ChatMessages)+1)
	messages = append(messages, ChatMessage{Role: "system", Content: system})
	messages = append(messages, p.ChatMessages...)
	return messages
}

func generateMessages(p AssistantParams) []ChatMessage {
	system := generateSystemPrompt
	if p.TurmaProfile != "" {
		system += fmt.Sprintf(
			"\n\nPERFIL DA TURMA:\n%s\nAdapta o conteúdo ao perfil desta turma, considerando as dificuldades, pontos fortes, ritmo e estratégias que funcionam.",
			p.TurmaProfile,
		)
	}

	categoryName, ok := generateCategoryNames[p.Category]
	if !ok {
		categoryName = p.Category
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Gera %s:\nAno: %s\nDisciplina: %s", categoryName, p.Ano, p.Disciplina)
	if p.Duracao != "" {
		sb.WriteString("\nDuração: " + p.Duracao)
	}
	if p.Nivel != "" {
		sb.WriteString("\nNível: " + p.Nivel)
	}
	fmt.Fprintf(&sb, "\nTema: %s\nObjetivo: %s", p.Tema, p.Objetivo)

	return []ChatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: sb.String()},
	}
}
