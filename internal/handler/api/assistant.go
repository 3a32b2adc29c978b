package api

import (
	"errors"
	"net/http"

	reqdto "oficina-criativa/internal/handler/dto/request"
	resdto "oficina-criativa/internal/handler/dto/response"
	"oficina-criativa/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	assistantCommands commands.AssistantCommands
}

func NewAssistantHandler(assistantCommands commands.AssistantCommands) *AssistantHandler {
	return &AssistantHandler{
		assistantCommands: assistantCommands,
	}
}

// @Summary Pedagogical assistant
// @Description Runs one of the canned assistant actions
// @Tags assistant
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AssistantRequest true "Action"
// @Success 200 {object} resdto.AssistantResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /assistant [post]
func (h *AssistantHandler) Run(c *gin.Context) {
	var req reqdto.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	content, err := h.assistantCommands.Run(c.Request.Context(), assistantParams(req))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUnknownAssistantAction):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid action",
			})
		case errors.Is(err, commands.ErrAssistantNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "AI not configured",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Assistant request failed",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AssistantResponse{Content: content})
}

func assistantParams(req reqdto.AssistantRequest) commands.AssistantParams {
	messages := make([]commands.ChatMessage, 0, len(req.ChatMessages))
	for _, m := range req.ChatMessages {
		messages = append(messages, commands.ChatMessage{Role: m.Role, Content: m.Content})
	}
	return commands.AssistantParams{
		Action:         req.Action,
		Ano:            req.Ano,
		Disciplina:     req.Disciplina,
		TurmaProfile:   req.TurmaProfile,
		PreviousThemes: req.PreviousThemes,
		ChatMessages:   messages,
		Objetivo:       req.Objetivo,
		Category:       req.Category,
		Duracao:        req.Duracao,
		Nivel:          req.Nivel,
		Tema:           req.Tema,
	}
}
