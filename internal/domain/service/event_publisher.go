package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContactEventType names what happened to a person or country.
type ContactEventType string

const (
	EventPersonCreated     ContactEventType = "person.created"
	EventPersonUpdated     ContactEventType = "person.updated"
	EventPersonDeleted     ContactEventType = "person.deleted"
	EventCountryCreated    ContactEventType = "country.created"
	EventCountriesUploaded ContactEventType = "countries.uploaded"
)

// IsCountryEvent reports whether the event changes the country list.
func (t ContactEventType) IsCountryEvent() bool {
	return t == EventCountryCreated || t == EventCountriesUploaded
}

// IsKnown reports whether the worker knows how to handle the type.
func (t ContactEventType) IsKnown() bool {
	switch t {
	case EventPersonCreated, EventPersonUpdated, EventPersonDeleted, EventCountryCreated, EventCountriesUploaded:
		return true
	default:
		return false
	}
}

// ContactEvent represents an event to be processed by the event worker
type ContactEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	EventID    uuid.UUID         `json:"event_id"`
	Type       ContactEventType  `json:"type"`
	PersonID   *uuid.UUID        `json:"person_id,omitempty"`
	CountryID  *uuid.UUID        `json:"country_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
	Payload    map[string]string `json:"payload,omitempty"`
}

// NewContactEvent stamps a new event with an ID and the current time.
func NewContactEvent(eventType ContactEventType, requestID string) *ContactEvent {
	return &ContactEvent{
		RequestID:  requestID,
		EventID:    uuid.New(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    map[string]string{},
	}
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishContactEvent publishes a contact event for async processing
	PublishContactEvent(ctx context.Context, event *ContactEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
