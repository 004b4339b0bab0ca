package impl

import (
	"context"
	"log/slog"

	deliverycontext "contacts/internal/delivery/context"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type personsDeleterService struct {
	personRepo repository.PersonRepository
	publisher  service.EventPublisher
	metrics    service.ContactsMetrics
	logger     *slog.Logger
}

// NewPersonsDeleterService is the constructor for the PersonsDeleter.
func NewPersonsDeleterService(params PersonsServiceParams) usecase.PersonsDeleter {
	return &personsDeleterService{
		personRepo: params.PersonRepo,
		publisher:  params.Publisher,
		metrics:    params.Metrics,
		logger:     params.Logger,
	}
}

func (srv *personsDeleterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DeletePerson reports false when no person has the given id.
func (srv *personsDeleterService) DeletePerson(ctx context.Context, id *uuid.UUID) (bool, error) {
	if id == nil {
		return false, errors.WithStack(domainerrors.ErrNilRequest)
	}

	person, err := srv.personRepo.FindByID(ctx, *id)
	if errors.Is(err, repository.ErrPersonNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to find person")
	}

	if err := srv.personRepo.Delete(ctx, *id); err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to delete person")
	}

	srv.log(ctx).Info("Person deleted", slog.String("person_id", id.String()))
	srv.metrics.PersonDeleted()
	publishEvent(ctx, srv.publisher, srv.log(ctx), newPersonEvent(ctx, service.EventPersonDeleted, *id, person.Name))

	return true, nil
}
