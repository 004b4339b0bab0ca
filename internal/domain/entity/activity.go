package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is the durable record of a processed contact event.
type Activity struct {
	ID         uuid.UUID
	EventID    uuid.UUID  // Unique per published event; makes processing idempotent.
	EventType  string     // e.g. "person.created".
	SubjectID  *uuid.UUID // The person or country the event is about, when there is one.
	RequestID  string     // Request that produced the event.
	Summary    string
	OccurredAt time.Time
	RecordedAt time.Time
}
