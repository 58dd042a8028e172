package telegram

import (
	"github.com/gin-gonic/gin"

	"personal-assistant/internal/assistant"
	pkgLog "personal-assistant/pkg/log"
	pkgTelegram "personal-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	uc     assistant.UseCase
	bot    *pkgTelegram.Bot
	secret string
}

// New creates a new Telegram delivery handler. An empty secret disables the
// webhook secret-token check.
func New(l pkgLog.Logger, uc assistant.UseCase, bot *pkgTelegram.Bot, secret string) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		secret: secret,
	}
}
