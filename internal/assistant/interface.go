package assistant

import (
	"context"

	"personal-assistant/internal/model"
)

// UseCase is the chat entry point used by every transport.
type UseCase interface {
	// Chat interprets one message and persists any resulting action.
	// The error is non-nil only for storage faults.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
}

// Interpreter turns a user message into a Response. It never fails:
// model and parse problems come back as fixed messages.
type Interpreter interface {
	Interpret(ctx context.Context, message string) Response
}

// Dispatcher executes an Action against the task and meeting stores and
// returns the user-facing confirmation.
type Dispatcher interface {
	Dispatch(ctx context.Context, action Action) (string, error)
}
