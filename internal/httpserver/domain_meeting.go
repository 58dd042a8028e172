package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	meetingHTTP "personal-assistant/internal/meeting/delivery/http"
	meetingUC "personal-assistant/internal/meeting/usecase"
	"personal-assistant/internal/middleware"
)

// setupMeetingDomain registers GET /api/meetings and GET /api/meetings.ics.
func (srv HTTPServer) setupMeetingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := meetingUC.New(srv.meetingRepo, srv.l)
	h := meetingHTTP.New(srv.l, uc)
	meetingHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Meeting domain registered")
	return nil
}
