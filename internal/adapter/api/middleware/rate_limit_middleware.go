package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"thriftbay/internal/infrastructure/ratelimit"
	apperrors "thriftbay/pkg/errors"
	"thriftbay/pkg/logger"
	"thriftbay/pkg/response"
)

// RateLimit throttles per client IP using the given store.
func RateLimit(store *ratelimit.RateLimiter) echo.MiddlewareFunc {
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Error(c, apperrors.Internal("Failed to identify client", err))
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("Rate limit exceeded for %s %s from %s", c.Request().Method, c.Path(), identifier)
			return response.Error(c, apperrors.TooManyRequests("Too many requests, please try again later"))
		},
	})
}

// Limiters holds the two shared buckets: a strict one for credential and
// anonymous write endpoints and a general one for everything else.
type Limiters struct {
	Strict  *ratelimit.RateLimiter
	General *ratelimit.RateLimiter
}

func NewLimiters() *Limiters {
	return &Limiters{
		Strict:  ratelimit.NewRateLimiter(ratelimit.StrictPolicy),
		General: ratelimit.NewRateLimiter(ratelimit.GeneralPolicy),
	}
}

func (l *Limiters) StrictLimit() echo.MiddlewareFunc {
	return RateLimit(l.Strict)
}

func (l *Limiters) GeneralLimit() echo.MiddlewareFunc {
	return RateLimit(l.General)
}
