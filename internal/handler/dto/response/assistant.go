package response

type AssistantResponse struct {
	Content string `json:"content"`
}
