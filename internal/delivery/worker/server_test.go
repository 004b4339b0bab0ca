package worker

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contacts/config"
	"contacts/internal/delivery/worker/handler"
	"contacts/internal/domain/constants"
	"contacts/internal/infra/metrics"
	mockUsecase "contacts/internal/mocks/usecase"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWorkerServer_Routes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
		Worker: &config.WorkerConfig{},
	}
	processor := mockUsecase.NewMockEventProcessor(t)
	m := metrics.New()

	e := NewEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: m,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:    cfg,
			Logger:    logger,
			Processor: processor,
		}),
		ActivityHandler: handler.NewActivityHandler(processor),
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("push", func(t *testing.T) {
		processor.EXPECT().ProcessContactEvent(mock.Anything, mock.Anything).Return(usecase.EventOutcomeRecorded, nil).Once()

		data := base64.StdEncoding.EncodeToString([]byte(`{"event_id":"` + uuid.NewString() + `","type":"person.updated"}`))
		req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"`+data+`","messageId":"1"}}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderXRequestID, "req-42")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "http_requests_total")
	})
}
