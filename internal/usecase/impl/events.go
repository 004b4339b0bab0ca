// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/service"

	"github.com/google/uuid"
)

// publishEvent sends a contact event. The write it describes has already
// been committed, so a failure is logged and not returned.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.ContactEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.PublishContactEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish contact event",
			slog.String("event_id", event.EventID.String()),
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

func newPersonEvent(ctx context.Context, eventType service.ContactEventType, personID uuid.UUID, name string) *service.ContactEvent {
	event := service.NewContactEvent(eventType, deliverycontext.GetRequestIDFromContext(ctx))
	event.PersonID = &personID
	if name != "" {
		event.Payload["person_name"] = name
	}

	return event
}

func newCountryEvent(ctx context.Context, eventType service.ContactEventType, countryID *uuid.UUID) *service.ContactEvent {
	event := service.NewContactEvent(eventType, deliverycontext.GetRequestIDFromContext(ctx))
	event.CountryID = countryID

	return event
}

// clock is swapped in tests.
type clock func() time.Time

func (c clock) now() time.Time {
	if c == nil {
		return time.Now()
	}

	return c()
}
