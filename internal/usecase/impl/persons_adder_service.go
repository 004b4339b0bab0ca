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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type personsAdderService struct {
	personRepo repository.PersonRepository
	validator  *validation.Validator
	publisher  service.EventPublisher
	metrics    service.ContactsMetrics
	logger     *slog.Logger
	clock      clock
}

// PersonsServiceParams holds the dependencies shared by the person services, injected by Fx.
type PersonsServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	PersonRepo repository.PersonRepository
	Validator  *validation.Validator
	Publisher  service.EventPublisher
	Metrics    service.ContactsMetrics
	Logger     *slog.Logger
}

// NewPersonsAdderService is the constructor for the PersonsAdder.
func NewPersonsAdderService(params PersonsServiceParams) usecase.PersonsAdder {
	return &personsAdderService{
		personRepo: params.PersonRepo,
		validator:  params.Validator,
		publisher:  params.Publisher,
		metrics:    params.Metrics,
		logger:     params.Logger,
	}
}

func (srv *personsAdderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddPerson validates the request, stores the person and announces it.
func (srv *personsAdderService) AddPerson(ctx context.Context, req *usecase.PersonAddRequest) (*usecase.PersonResponse, error) {
	if req == nil {
		return nil, errors.WithStack(domainerrors.ErrNilRequest)
	}

	req.Normalize()
	if err := srv.validator.Struct(req); err != nil {
		srv.log(ctx).Debug("Person add request rejected", slog.Any("error", err))

		return nil, err
	}

	person := req.ToPerson()
	person.ID = uuid.New()

	if err := srv.personRepo.Create(ctx, person); err != nil {
		return nil, errors.Wrap(err, "failed to create person")
	}

	// Reload so the response carries the country name.
	stored, err := srv.personRepo.FindByID(ctx, person.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load created person")
	}

	srv.log(ctx).Info("Person added", slog.String("person_id", stored.ID.String()))
	srv.metrics.PersonCreated()
	publishEvent(ctx, srv.publisher, srv.log(ctx), newPersonEvent(ctx, service.EventPersonCreated, stored.ID, stored.Name))

	return usecase.NewPersonResponse(stored, srv.clock.now()), nil
}
