package usecase

import (
	"context"
	"strings"

	"personal-assistant/internal/assistant"
	"personal-assistant/pkg/llmprovider"
	"personal-assistant/pkg/metrics"
)

// Interpret runs one message through classify, model call, parse and
// action routing. add_task and resolved schedule_meeting actions are returned
// to the caller; every other action is dispatched here.
func (uc *implUseCase) Interpret(ctx context.Context, message string) assistant.Response {
	intent := uc.router.Classify(message)
	metrics.IncrementChatMessage(string(intent))
	if reply, ok := intent.Reply(); ok {
		return assistant.NewMessage(reply)
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: systemPrompt,
		Messages:          []llmprovider.Message{{Role: llmprovider.RoleUser, Text: message}},
		Temperature:       modelTemperature,
		MaxTokens:         modelMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Interpret GenerateContent: %v", err)
		return assistant.NewMessage(assistant.MsgError)
	}

	parsed, err := assistant.ParseResponse(resp.Text)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Interpret ParseResponse: %v raw=%q", err, resp.Text)
		return assistant.NewMessage(assistant.MsgRephrase)
	}

	if parsed.Type == assistant.ResponseMessage {
		if !mentionsDomain(message) {
			return assistant.NewMessage(assistant.MsgRedirect)
		}
		return parsed
	}

	return uc.routeAction(ctx, parsed.Action)
}

func (uc *implUseCase) routeAction(ctx context.Context, a assistant.Action) assistant.Response {
	switch a.Kind {
	case assistant.ActionAddTask:
		return assistant.NewAction(a)

	case assistant.ActionScheduleMeeting:
		slot, ok := uc.resolveSlot(a)
		if !ok {
			return assistant.NewMessage(assistant.MsgBadDate)
		}
		return assistant.NewAction(assistant.Action{Kind: a.Kind, Slot: &slot})

	default:
		text, err := uc.Dispatch(ctx, a)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Interpret Dispatch %s: %v", a.Kind, err)
			return assistant.NewMessage(assistant.MsgError)
		}
		return assistant.NewMessage(text)
	}
}

func mentionsDomain(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range assistant.DomainKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
