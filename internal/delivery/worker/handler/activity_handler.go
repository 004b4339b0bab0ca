package handler

import (
	"net/http"
	"time"

	"contacts/internal/errors"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ActivityResponse is one processed contact event.
type ActivityResponse struct {
	EventID    uuid.UUID  `json:"event_id"`
	EventType  string     `json:"event_type"`
	SubjectID  *uuid.UUID `json:"subject_id,omitempty"`
	RequestID  string     `json:"request_id,omitempty"`
	Summary    string     `json:"summary"`
	OccurredAt time.Time  `json:"occurred_at"`
	RecordedAt time.Time  `json:"recorded_at"`
}

// ActivityHandler lists what the worker has processed.
type ActivityHandler struct {
	processor usecase.EventProcessor
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(processor usecase.EventProcessor) *ActivityHandler {
	return &ActivityHandler{processor: processor}
}

// Recent returns the latest activity, newest first. ?limit= caps the list.
func (h *ActivityHandler) Recent(c echo.Context) error {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be a number"})
	}

	activities, err := h.processor.RecentActivity(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, ActivityResponse{
			EventID:    a.EventID,
			EventType:  a.EventType,
			SubjectID:  a.SubjectID,
			RequestID:  a.RequestID,
			Summary:    a.Summary,
			OccurredAt: a.OccurredAt,
			RecordedAt: a.RecordedAt,
		})
	}

	return c.JSON(http.StatusOK, out)
}
