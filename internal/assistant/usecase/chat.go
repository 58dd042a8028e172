package usecase

import (
	"context"
	"strings"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/model"
)

// Chat interprets the message and persists pending add_task and
// schedule_meeting actions, so every action is stored by Dispatch.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyMessage
	}

	resp := uc.Interpret(ctx, message)
	if resp.Type != assistant.ResponseAction {
		return assistant.ChatOutput{Response: resp}, nil
	}

	text, err := uc.Dispatch(ctx, resp.Action)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Chat Dispatch %s: %v", resp.Action.Kind, err)
		return assistant.ChatOutput{}, err
	}

	return assistant.ChatOutput{Response: assistant.NewMessage(text)}, nil
}
