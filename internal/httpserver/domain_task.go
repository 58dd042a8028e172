package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/middleware"
	taskHTTP "personal-assistant/internal/task/delivery/http"
	taskUC "personal-assistant/internal/task/usecase"
)

// setupTaskDomain registers GET /api/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := taskUC.New(srv.taskRepo, srv.l)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
