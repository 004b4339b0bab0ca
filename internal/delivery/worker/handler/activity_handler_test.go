package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contacts/internal/domain/entity"
	mockUsecase "contacts/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityHandler_Recent(t *testing.T) {
	t.Run("lists activity", func(t *testing.T) {
		processor := mockUsecase.NewMockEventProcessor(t)
		h := NewActivityHandler(processor)
		personID := uuid.New()
		now := time.Now().UTC().Truncate(time.Second)

		processor.EXPECT().RecentActivity(mock.Anything, 5).Return([]*entity.Activity{{
			EventID:    uuid.New(),
			EventType:  "person.created",
			SubjectID:  &personID,
			Summary:    "Person Ann created",
			OccurredAt: now,
			RecordedAt: now,
		}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/activity?limit=5", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, h.Recent(echo.New().NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got []ActivityResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "person.created", got[0].EventType)
		assert.Equal(t, &personID, got[0].SubjectID)
	})

	t.Run("bad limit", func(t *testing.T) {
		h := NewActivityHandler(mockUsecase.NewMockEventProcessor(t))

		req := httptest.NewRequest(http.MethodGet, "/activity?limit=many", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, h.Recent(echo.New().NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
