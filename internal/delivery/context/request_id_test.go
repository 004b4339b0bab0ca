package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindRequest(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx, reqLogger := BindRequest(context.Background(), base, "req-42")

	assert.Equal(t, "req-42", GetRequestIDFromContext(ctx))
	assert.Same(t, reqLogger, GetLogger(ctx))

	GetLoggerOrDefault(ctx, base).Info("person created")
	assert.Contains(t, buf.String(), "request_id=req-42")
}

func TestGetLoggerOrDefault_OutsideRequest(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}

func TestGetRequestID(t *testing.T) {
	t.Run("echo value wins", func(t *testing.T) {
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/persons", nil), httptest.NewRecorder())
		SetRequestID(c, "from-echo")

		assert.Equal(t, "from-echo", GetRequestID(c))
	})

	t.Run("falls back to request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/push", nil)
		req = req.WithContext(WithRequestID(req.Context(), "from-event"))
		c := echo.New().NewContext(req, httptest.NewRecorder())

		assert.Equal(t, "from-event", GetRequestID(c))
	})

	t.Run("generates a uuid", func(t *testing.T) {
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		_, err := uuid.Parse(GetRequestID(c))
		require.NoError(t, err)
	})
}
