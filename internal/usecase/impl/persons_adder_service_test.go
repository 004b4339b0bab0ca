package impl

import (
	"context"
	"testing"
	"time"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"
	mockRepo "contacts/internal/mocks/repository"
	mockSvc "contacts/internal/mocks/service"
	"contacts/internal/usecase"
	"contacts/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type personsServiceFixtures struct {
	txManager  *mockRepo.MockTransactionManager
	personRepo *mockRepo.MockPersonRepository
	publisher  *mockSvc.MockEventPublisher
	metrics    *mockSvc.MockContactsMetrics
	params     PersonsServiceParams
}

func createPersonsServiceFixtures(t *testing.T) personsServiceFixtures {
	f := personsServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		personRepo: mockRepo.NewMockPersonRepository(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
		metrics:    mockSvc.NewMockContactsMetrics(t),
	}
	f.params = PersonsServiceParams{
		TxManager:  f.txManager,
		PersonRepo: f.personRepo,
		Validator:  validation.New(),
		Publisher:  f.publisher,
		Metrics:    f.metrics,
		Logger:     testLogger(),
	}

	return f
}

func validAddRequest() *usecase.PersonAddRequest {
	return &usecase.PersonAddRequest{
		PersonName:         "  Ada Lovelace ",
		Email:              "ada@example.com",
		DateOfBirth:        date(1990, time.March, 14),
		Gender:             "female",
		Address:            "12 St James's Square",
		ReceiveNewsLetters: ptr(true),
		PIN:                ptr("1234"),
	}
}

func TestPersonsAdderService_AddPerson_Success(t *testing.T) {
	fx := createPersonsServiceFixtures(t)
	srv := NewPersonsAdderService(fx.params).(*personsAdderService)
	srv.clock = fixedClock

	ctx := context.Background()
	var created *entity.Person

	fx.personRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Person")).
		Run(func(_ context.Context, person *entity.Person) { created = person }).
		Return(nil)
	fx.personRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Person, error) {
			stored := *created
			stored.Country = &entity.Country{Name: "England"}

			return &stored, nil
		})
	fx.metrics.EXPECT().PersonCreated().Return()
	fx.publisher.EXPECT().
		PublishContactEvent(ctx, mock.MatchedBy(func(e *service.ContactEvent) bool {
			return e.Type == service.EventPersonCreated && e.Payload["person_name"] == "Ada Lovelace"
		})).
		Return(nil)

	resp, err := srv.AddPerson(ctx, validAddRequest())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, created.ID, resp.PersonID)
	assert.Equal(t, "Ada Lovelace", resp.PersonName)
	assert.Equal(t, entity.GenderFemale, created.Gender)
	assert.Equal(t, "England", resp.Country)
	assert.Equal(t, "1234", *created.PIN)
	require.NotNil(t, resp.Age)
	assert.Equal(t, "34 years", *resp.Age)
}

func TestPersonsAdderService_AddPerson_BlankPINStoredAsNull(t *testing.T) {
	fx := createPersonsServiceFixtures(t)
	srv := NewPersonsAdderService(fx.params)

	ctx := context.Background()
	var created *entity.Person

	fx.personRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Person")).
		Run(func(_ context.Context, person *entity.Person) { created = person }).
		Return(nil)
	fx.personRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) (*entity.Person, error) { return created, nil })
	fx.metrics.EXPECT().PersonCreated().Return()
	fx.publisher.EXPECT().PublishContactEvent(ctx, mock.Anything).Return(nil)

	for _, pin := range []string{"", "   "} {
		req := validAddRequest()
		req.PIN = ptr(pin)

		_, err := srv.AddPerson(ctx, req)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Nil(t, created.PIN, "pin %q", pin)
	}
}

func TestPersonsAdderService_AddPerson_NilRequest(t *testing.T) {
	fx := createPersonsServiceFixtures(t)
	srv := NewPersonsAdderService(fx.params)

	resp, err := srv.AddPerson(context.Background(), nil)

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, domainerrors.ErrNilRequest))
}

func TestPersonsAdderService_AddPerson_ValidationFailed(t *testing.T) {
	fx := createPersonsServiceFixtures(t)
	srv := NewPersonsAdderService(fx.params)

	req := validAddRequest()
	req.Email = "not-an-email"
	req.PIN = ptr("12")

	resp, err := srv.AddPerson(context.Background(), req)

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var vErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{"Invalid Email Address", "PIN must be exactly 4 characters"}, vErr.Messages())
}

func TestPersonsAdderService_AddPerson_CreateFails(t *testing.T) {
	fx := createPersonsServiceFixtures(t)
	srv := NewPersonsAdderService(fx.params)

	ctx := context.Background()
	dbErr := errors.New("connection reset")
	fx.personRepo.EXPECT().Create(ctx, mock.Anything).Return(dbErr)

	resp, err := srv.AddPerson(ctx, validAddRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, dbErr)
}

func TestPersonsAdderService_AddPerson_PublishFailureIsNotReturned(t *testing.T) {
	fx := createPersonsServiceFixtures(t)
	srv := NewPersonsAdderService(fx.params)

	ctx := context.Background()
	person := samplePerson("grace")
	fx.personRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.personRepo.EXPECT().FindByID(ctx, mock.Anything).Return(person, nil)
	fx.metrics.EXPECT().PersonCreated().Return()
	fx.publisher.EXPECT().PublishContactEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	resp, err := srv.AddPerson(ctx, validAddRequest())

	require.NoError(t, err)
	assert.Equal(t, person.ID, resp.PersonID)
}
