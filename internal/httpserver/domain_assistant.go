package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "personal-assistant/internal/assistant/delivery/http"
	tgDelivery "personal-assistant/internal/assistant/delivery/telegram"
	assistantUC "personal-assistant/internal/assistant/usecase"
	"personal-assistant/internal/middleware"
	"personal-assistant/internal/router"
)

// setupAssistantDomain wires the interpreter and registers POST /api/chat and,
// when a bot is configured, POST /webhook/telegram.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := assistantUC.New(
		srv.l,
		srv.llm,
		router.New(),
		srv.dateMath,
		srv.taskRepo,
		srv.meetingRepo,
		srv.calendar,
		srv.calendarID,
	)

	h := chatHTTP.New(srv.l, uc)
	chatHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Assistant domain registered")

	if srv.telegramBot != nil {
		tg := tgDelivery.New(srv.l, uc, srv.telegramBot, srv.telegramSecret)
		srv.gin.POST("/webhook/telegram", tg.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram bot not configured, skipping webhook route")
	}

	return nil
}
