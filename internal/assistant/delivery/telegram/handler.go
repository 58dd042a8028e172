package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/assistant"
	"personal-assistant/internal/model"
	pkgResponse "personal-assistant/pkg/response"
	pkgTelegram "personal-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It answers 200 right away and runs the message through the assistant in
// the background; Telegram retries updates that take too long to acknowledge.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" && c.GetHeader(pkgTelegram.SecretTokenHeader) != h.secret {
		h.l.Warnf(ctx, "telegram handler: rejected update with bad secret token")
		pkgResponse.Unauthorized(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Polls, edits, channel posts
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message

	go func() {
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, assistant.MsgError)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	switch msg.Text {
	case cmdStart:
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgStart)
	case cmdHelp:
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgHelp)
	}

	sc := model.Scope{Source: model.SourceTelegram}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
	}

	output, err := h.uc.Chat(ctx, sc, assistant.ChatInput{Message: msg.Text})
	if err != nil {
		return fmt.Errorf("uc.Chat: %w", err)
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, replyText(output.Response))
}

// replyText renders a response for a plain-text chat.
func replyText(r assistant.Response) string {
	if r.Type == assistant.ResponseMessage {
		return r.Message
	}
	b, err := r.Action.MarshalJSON()
	if err != nil {
		return assistant.MsgError
	}
	return string(b)
}
