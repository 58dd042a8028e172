package http

import (
	"personal-assistant/internal/meeting"
	"personal-assistant/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the public interface for the meeting HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	ExportICS(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc meeting.UseCase
}

// New creates a new HTTP handler for the meeting domain.
func New(l log.Logger, uc meeting.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
