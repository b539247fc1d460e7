package middleware

import (
	"personal-fitness-trainer/pkg/log"
)

// Config holds the middleware settings.
type Config struct {
	RequestsPerMin int
	Burst          int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. A non-positive RequestsPerMin disables rate limiting.
func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.Burst)
	}
	return mw
}
