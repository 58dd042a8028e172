package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultCORSOrigin is the Vite dev server the web client runs on.
const DefaultCORSOrigin = "http://localhost:5173"

// Cors allows the configured browser origins with credentials.
func (m Middleware) Cors() gin.HandlerFunc {
	origins := m.corsOrigins
	if len(origins) == 0 {
		origins = []string{DefaultCORSOrigin}
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
