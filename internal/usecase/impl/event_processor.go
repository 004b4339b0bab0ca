package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultActivityLimit = 50

type eventProcessor struct {
	activityRepo repository.ActivityRepository
	cache        service.CountryCache
	metrics      service.ContactsMetrics
	logger       *slog.Logger
	clock        clock
}

// EventProcessorParams holds dependencies for the EventProcessor, injected by Fx.
type EventProcessorParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	Cache        service.CountryCache
	Metrics      service.ContactsMetrics
	Logger       *slog.Logger
}

// NewEventProcessor is the constructor for the EventProcessor.
func NewEventProcessor(params EventProcessorParams) usecase.EventProcessor {
	return &eventProcessor{
		activityRepo: params.ActivityRepo,
		cache:        params.Cache,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

func (p *eventProcessor) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

// ProcessContactEvent records the event once. Country events also drop the
// cached country list so the API reloads it.
func (p *eventProcessor) ProcessContactEvent(ctx context.Context, event *service.ContactEvent) (usecase.EventOutcome, error) {
	if event == nil || !event.Type.IsKnown() {
		outcome := usecase.EventOutcomeIgnored
		eventType := "unknown"
		if event != nil {
			eventType = string(event.Type)
		}
		p.log(ctx).Warn("Ignoring contact event", slog.String("type", eventType))
		p.metrics.ContactEventProcessed(eventType, string(outcome))

		return outcome, nil
	}

	if event.Type.IsCountryEvent() {
		if err := p.cache.Invalidate(ctx); err != nil {
			p.metrics.ContactEventProcessed(string(event.Type), "error")

			return "", errors.Wrap(err, "failed to invalidate country cache")
		}
	}

	activity := &entity.Activity{
		ID:         uuid.New(),
		EventID:    event.EventID,
		EventType:  string(event.Type),
		SubjectID:  subjectOf(event),
		RequestID:  event.RequestID,
		Summary:    summarize(event),
		OccurredAt: event.OccurredAt,
		RecordedAt: p.clock.now().UTC(),
	}

	outcome := usecase.EventOutcomeRecorded
	if err := p.activityRepo.Create(ctx, activity); err != nil {
		if !errors.Is(err, repository.ErrActivityDuplicate) {
			p.metrics.ContactEventProcessed(string(event.Type), "error")

			return "", errors.Wrap(err, "failed to record activity")
		}
		outcome = usecase.EventOutcomeDuplicate
	}

	p.log(ctx).Info("Contact event processed",
		slog.String("event_id", event.EventID.String()),
		slog.String("type", string(event.Type)),
		slog.String("outcome", string(outcome)),
	)
	p.metrics.ContactEventProcessed(string(event.Type), string(outcome))

	return outcome, nil
}

// RecentActivity lists the newest activities. A non-positive limit uses the default.
func (p *eventProcessor) RecentActivity(ctx context.Context, limit int) ([]*entity.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	activities, err := p.activityRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent activity")
	}

	return activities, nil
}

func subjectOf(event *service.ContactEvent) *uuid.UUID {
	if event.PersonID != nil {
		return event.PersonID
	}

	return event.CountryID
}

func summarize(event *service.ContactEvent) string {
	switch event.Type {
	case service.EventPersonCreated:
		return fmt.Sprintf("Person %q added", event.Payload["person_name"])
	case service.EventPersonUpdated:
		return fmt.Sprintf("Person %q updated", event.Payload["person_name"])
	case service.EventPersonDeleted:
		return fmt.Sprintf("Person %q deleted", event.Payload["person_name"])
	case service.EventCountryCreated:
		return "Country added"
	case service.EventCountriesUploaded:
		return fmt.Sprintf("%s countries uploaded", event.Payload["count"])
	default:
		return string(event.Type)
	}
}
