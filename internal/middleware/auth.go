package middleware

import (
	"strings"

	"personal-assistant/pkg/log"
	"personal-assistant/pkg/response"
	"personal-assistant/pkg/scope"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// Auth verifies the bearer token and stores the caller scope in the request
// context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.jwtManager == nil {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		sc, err := m.jwtManager.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		ctx := scope.SetScopeToContext(c.Request.Context(), sc)
		ctx = log.WithUserID(ctx, sc.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
