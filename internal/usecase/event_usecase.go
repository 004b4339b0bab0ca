package usecase

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"
)

// EventOutcome describes what the worker did with a contact event.
type EventOutcome string

const (
	EventOutcomeRecorded  EventOutcome = "recorded"
	EventOutcomeDuplicate EventOutcome = "duplicate"
	EventOutcomeIgnored   EventOutcome = "ignored"
)

// EventProcessor handles contact events delivered to the worker.
// A returned error means the event should be redelivered.
type EventProcessor interface {
	ProcessContactEvent(ctx context.Context, event *service.ContactEvent) (EventOutcome, error)

	// RecentActivity lists the latest processed events, newest first.
	RecentActivity(ctx context.Context, limit int) ([]*entity.Activity, error)
}
