package http

import (
	"personal-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/meetings", mw.Auth(), h.List)
	rg.GET("/meetings.ics", mw.Auth(), h.ExportICS)
}
