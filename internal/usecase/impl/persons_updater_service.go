package impl

import (
	"context"
	"log/slog"

	deliverycontext "contacts/internal/delivery/context"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"
	"contacts/internal/validation"

	"github.com/pkg/errors"
)

type personsUpdaterService struct {
	txManager repository.TransactionManager
	validator *validation.Validator
	publisher service.EventPublisher
	metrics   service.ContactsMetrics
	logger    *slog.Logger
	clock     clock
}

// NewPersonsUpdaterService is the constructor for the PersonsUpdater.
func NewPersonsUpdaterService(params PersonsServiceParams) usecase.PersonsUpdater {
	return &personsUpdaterService{
		txManager: params.TxManager,
		validator: params.Validator,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *personsUpdaterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdatePerson replaces every field of an existing person, PIN included.
func (srv *personsUpdaterService) UpdatePerson(ctx context.Context, req *usecase.PersonUpdateRequest) (*usecase.PersonResponse, error) {
	if req == nil {
		return nil, errors.WithStack(domainerrors.ErrNilRequest)
	}

	req.Normalize()
	if err := srv.validator.Struct(req); err != nil {
		srv.log(ctx).Debug("Person update request rejected", slog.Any("error", err))

		return nil, err
	}

	updated := req.ToPerson()

	var response *usecase.PersonResponse
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		personRepo := factory.NewPersonRepository()

		existing, err := personRepo.FindByID(ctx, updated.ID)
		if errors.Is(err, repository.ErrPersonNotFound) {
			return errors.WithStack(domainerrors.ErrInvalidPersonID)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find person")
		}

		existing.Name = updated.Name
		existing.Email = updated.Email
		existing.DateOfBirth = updated.DateOfBirth
		existing.Gender = updated.Gender
		existing.CountryID = updated.CountryID
		existing.Country = nil
		existing.Address = updated.Address
		existing.ReceiveNewsLetters = updated.ReceiveNewsLetters
		existing.PIN = updated.PIN

		if err := personRepo.Update(ctx, existing); err != nil {
			return errors.Wrap(err, "failed to update person")
		}

		stored, err := personRepo.FindByID(ctx, existing.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load updated person")
		}
		response = usecase.NewPersonResponse(stored, srv.clock.now())

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Person updated", slog.String("person_id", response.PersonID.String()))
	srv.metrics.PersonUpdated()
	publishEvent(ctx, srv.publisher, srv.log(ctx), newPersonEvent(ctx, service.EventPersonUpdated, response.PersonID, response.PersonName))

	return response, nil
}
