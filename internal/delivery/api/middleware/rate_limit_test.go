package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contacts/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimiter(t *testing.T) {
	e := echo.New()
	limiter := LoginRateLimiter(&config.RateLimitConfig{LoginPerSecond: 0.001, LoginBurst: 2, ExpiresIn: time.Minute})
	h := limiter(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	attempt := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/account/login", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		_ = h(e.NewContext(req, rec))

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, attempt("10.0.0.1"))
	assert.Equal(t, http.StatusOK, attempt("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, attempt("10.0.0.1"))
	assert.Equal(t, http.StatusOK, attempt("10.0.0.2"))
}
