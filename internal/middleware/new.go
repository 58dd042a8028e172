package middleware

import (
	"personal-assistant/pkg/log"
	"personal-assistant/pkg/scope"
)

// Config carries the HTTP edge settings.
type Config struct {
	CORSOrigins     []string
	RateLimitPerMin int
}

type Middleware struct {
	l           log.Logger
	jwtManager  scope.Manager
	corsOrigins []string
	limiter     *rateLimiter
}

// New builds the middleware set. A nil jwtManager disables bearer auth and
// every caller is treated as the anonymous web user. A non-positive
// RateLimitPerMin disables rate limiting.
func New(l log.Logger, jwtManager scope.Manager, cfg Config) Middleware {
	mw := Middleware{
		l:           l,
		jwtManager:  jwtManager,
		corsOrigins: cfg.CORSOrigins,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
