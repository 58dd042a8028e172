package http

import "personal-assistant/internal/assistant"

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message" binding:"required"`
}

func (r chatReq) toInput() assistant.ChatInput {
	return assistant.ChatInput{Message: r.Message}
}

// --- Response DTOs ---

// chatResp is {type, content}; content is a string for "message" and an
// action object for "action".
type chatResp struct {
	Type    string `json:"type" example:"message"`
	Content any    `json:"content" swaggertype:"string" example:"✅ Task added: buy milk"`
}

func (h *handler) newChatResp(out assistant.ChatOutput) chatResp {
	r := out.Response
	if r.Type == assistant.ResponseAction {
		return chatResp{Type: string(r.Type), Content: r.Action}
	}
	return chatResp{Type: string(assistant.ResponseMessage), Content: r.Message}
}
