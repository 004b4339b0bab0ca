package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	domainerrors "contacts/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestRequestIDMiddleware_ReusesHeader(t *testing.T) {
	logger, _ := bufferLogger()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	var ctxID string
	var ctxLogger *slog.Logger
	err := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		ctxLogger = deliverycontext.GetLogger(c.Request().Context())

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "req-123", ctxID)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-123", deliverycontext.GetRequestID(c))
	assert.NotNil(t, ctxLogger)
}

func TestRequestIDMiddleware_ReplacesMissingOrOversizedHeader(t *testing.T) {
	logger, _ := bufferLogger()

	for _, header := range []string{"", strings.Repeat("x", maxRequestIDLength+1)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		require.NoError(t, NewRequestIDMiddleware(logger).Process(func(echo.Context) error { return nil })(c))

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.Len(t, got, 36)
		assert.NotEqual(t, header, got)
	}
}

func TestLoggerMiddleware_DebugOnly(t *testing.T) {
	logger, buf := bufferLogger()
	cfg := &config.Config{}

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/persons", nil), httptest.NewRecorder())
	require.NoError(t, NewLoggerMiddleware(logger, cfg).Handle(func(echo.Context) error { return nil })(c))
	assert.Empty(t, buf.String())

	cfg.Env.Debug = true
	c = echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/persons?searchBy=Email", nil), httptest.NewRecorder())
	err := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})(c)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "HTTP Request")
	assert.Contains(t, buf.String(), "status=204")
	assert.Contains(t, buf.String(), "searchBy=Email")
}

func TestLoggerMiddleware_LevelFromUnrenderedError(t *testing.T) {
	logger, buf := bufferLogger()
	cfg := &config.Config{}
	cfg.Env.Debug = true

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/persons/x", nil), httptest.NewRecorder())
	err := NewLoggerMiddleware(logger, cfg).Handle(func(echo.Context) error {
		return domainerrors.ErrPersonNotFound
	})(c)

	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
}
