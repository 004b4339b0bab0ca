package middleware

import (
	"net/http"

	"contacts/config"
	"contacts/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// LoginRateLimiter throttles sign in attempts per client IP.
func LoginRateLimiter(cfg *config.RateLimitConfig) echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.LoginPerSecond),
		Burst:     cfg.LoginBurst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Error(c, http.StatusForbidden, "RATE_LIMIT_IDENTIFIER", "Unable to identify the client", nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.Error(c, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Too many sign in attempts, please retry later", nil)
		},
	})
}
