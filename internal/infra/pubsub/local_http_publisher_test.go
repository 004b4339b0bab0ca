package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"contacts/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishContactEvent(t *testing.T) {
	var received PushMessage
	var requestIDHeader string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	personID := uuid.New()
	event := service.NewContactEvent(service.EventPersonCreated, "req-1")
	event.PersonID = &personID
	event.Payload["person_name"] = "Ada"

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	require.NoError(t, publisher.PublishContactEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestIDHeader)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, event.EventID.String(), received.Message.MessageID)
	assert.Equal(t, "person.created", received.Message.Attributes["type"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.ContactEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.EventID, decoded.EventID)
	require.NotNil(t, decoded.PersonID)
	assert.Equal(t, personID, *decoded.PersonID)
	assert.Equal(t, "Ada", decoded.Payload["person_name"])
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishContactEvent(context.Background(), service.NewContactEvent(service.EventCountryCreated, ""))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := service.NewContactEvent(service.EventPersonDeleted, "")

	attrs := eventAttributes(event)

	assert.Equal(t, event.EventID.String(), attrs["event_id"])
	assert.Equal(t, "person.deleted", attrs["type"])
	_, ok := attrs["request_id"]
	assert.False(t, ok)
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: discardLogger()}

	require.NoError(t, publisher.PublishContactEvent(context.Background(), service.NewContactEvent(service.EventPersonUpdated, "")))
	require.NoError(t, publisher.Close())
}
