package impl

import (
	"bytes"
	"context"
	"testing"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	mockRepo "contacts/internal/mocks/repository"
	mockSvc "contacts/internal/mocks/service"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type countriesServiceFixtures struct {
	service     usecase.CountriesUsecase
	txManager   *mockRepo.MockTransactionManager
	countryRepo *mockRepo.MockCountryRepository
	reader      *mockSvc.MockSpreadsheetReader
	cache       *mockSvc.MockCountryCache
	publisher   *mockSvc.MockEventPublisher
	metrics     *mockSvc.MockContactsMetrics
}

func createCountriesServiceFixtures(t *testing.T) countriesServiceFixtures {
	f := countriesServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		countryRepo: mockRepo.NewMockCountryRepository(t),
		reader:      mockSvc.NewMockSpreadsheetReader(t),
		cache:       mockSvc.NewMockCountryCache(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		metrics:     mockSvc.NewMockContactsMetrics(t),
	}
	f.service = NewCountriesService(CountriesServiceParams{
		TxManager:   f.txManager,
		CountryRepo: f.countryRepo,
		Reader:      f.reader,
		Cache:       f.cache,
		Publisher:   f.publisher,
		Metrics:     f.metrics,
		Logger:      testLogger(),
	})

	return f
}

func TestCountriesService_AddCountry_Success(t *testing.T) {
	fx := createCountriesServiceFixtures(t)
	ctx := context.Background()

	fx.countryRepo.EXPECT().FindByName(ctx, "Peru").Return(nil, repository.ErrCountryNotFound)
	fx.countryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Country")).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx).Return(nil)
	fx.metrics.EXPECT().CountriesAdded(1).Return()
	fx.publisher.EXPECT().
		PublishContactEvent(ctx, mock.MatchedBy(func(e *service.ContactEvent) bool {
			return e.Type == service.EventCountryCreated && e.CountryID != nil
		})).
		Return(nil)

	resp, err := fx.service.AddCountry(ctx, &usecase.CountryAddRequest{CountryName: " Peru "})

	require.NoError(t, err)
	assert.Equal(t, "Peru", resp.CountryName)
	assert.NotEqual(t, uuid.Nil, resp.CountryID)
}

func TestCountriesService_AddCountry_Rejected(t *testing.T) {
	ctx := context.Background()

	t.Run("nil request", func(t *testing.T) {
		fx := createCountriesServiceFixtures(t)

		_, err := fx.service.AddCountry(ctx, nil)

		assert.True(t, errors.Is(err, domainerrors.ErrNilRequest))
	})

	t.Run("blank name", func(t *testing.T) {
		fx := createCountriesServiceFixtures(t)

		_, err := fx.service.AddCountry(ctx, &usecase.CountryAddRequest{CountryName: "   "})

		assert.True(t, errors.Is(err, domainerrors.ErrCountryNameRequired))
	})

	t.Run("duplicate name", func(t *testing.T) {
		fx := createCountriesServiceFixtures(t)
		fx.countryRepo.EXPECT().FindByName(ctx, "Japan").Return(&entity.Country{ID: uuid.New(), Name: "Japan"}, nil)

		_, err := fx.service.AddCountry(ctx, &usecase.CountryAddRequest{CountryName: "Japan"})

		require.True(t, errors.Is(err, domainerrors.ErrCountryAlreadyExists))
		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Country with name Japan already exists.", appErr.Message())
	})
}

func TestCountriesService_GetAllCountries(t *testing.T) {
	ctx := context.Background()
	countries := []*entity.Country{{ID: uuid.New(), Name: "Chile"}, {ID: uuid.New(), Name: "Peru"}}

	t.Run("cache hit", func(t *testing.T) {
		fx := createCountriesServiceFixtures(t)
		fx.cache.EXPECT().Get(ctx).Return(countries, true, nil)

		resp, err := fx.service.GetAllCountries(ctx)

		require.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("cache miss fills the cache", func(t *testing.T) {
		fx := createCountriesServiceFixtures(t)
		fx.cache.EXPECT().Get(ctx).Return(nil, false, nil)
		fx.countryRepo.EXPECT().FindAll(ctx).Return(countries, nil)
		fx.cache.EXPECT().Set(ctx, countries).Return(nil)

		resp, err := fx.service.GetAllCountries(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Chile", resp[0].CountryName)
	})

	t.Run("cache failure falls back to the database", func(t *testing.T) {
		fx := createCountriesServiceFixtures(t)
		fx.cache.EXPECT().Get(ctx).Return(nil, false, errors.New("redis down"))
		fx.countryRepo.EXPECT().FindAll(ctx).Return(countries, nil)
		fx.cache.EXPECT().Set(ctx, countries).Return(errors.New("redis down"))

		resp, err := fx.service.GetAllCountries(ctx)

		require.NoError(t, err)
		assert.Len(t, resp, 2)
	})
}

func TestCountriesService_GetCountryByID(t *testing.T) {
	fx := createCountriesServiceFixtures(t)
	ctx := context.Background()

	resp, err := fx.service.GetCountryByID(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, resp)

	id := uuid.New()
	fx.countryRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCountryNotFound)

	resp, err = fx.service.GetCountryByID(ctx, &id)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestCountriesService_UploadCountriesFromExcel(t *testing.T) {
	ctx := context.Background()
	file := bytes.NewReader([]byte("xlsx"))

	t.Run("missing worksheet", func(t *testing.T) {
		fx := createCountriesServiceFixtures(t)
		fx.reader.EXPECT().ReadColumn(file, CountriesSheet, 0, 2).Return(nil, service.ErrWorksheetNotFound)

		n, err := fx.service.UploadCountriesFromExcel(ctx, file)

		assert.Zero(t, n)
		assert.True(t, errors.Is(err, domainerrors.ErrCountriesWorksheetMissing))
	})

	t.Run("not a workbook", func(t *testing.T) {
		fx := createCountriesServiceFixtures(t)
		fx.reader.EXPECT().ReadColumn(file, CountriesSheet, 0, 2).Return(nil, errors.Wrap(service.ErrInvalidWorkbook, "zip: not a valid zip file"))

		_, err := fx.service.UploadCountriesFromExcel(ctx, file)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidSpreadsheet))
	})

	t.Run("inserts new names only", func(t *testing.T) {
		fx := createCountriesServiceFixtures(t)
		fx.reader.EXPECT().ReadColumn(file, CountriesSheet, 0, 2).Return([]string{"Chile", "", "Peru", "Chile", "Japan"}, nil)

		txCountryRepo := mockRepo.NewMockCountryRepository(t)
		mockFactory := mockRepo.NewMockRepositoryFactory(t)
		mockFactory.EXPECT().NewCountryRepository().Return(txCountryRepo)
		txCountryRepo.EXPECT().FindByName(ctx, "Chile").Return(nil, repository.ErrCountryNotFound).Once()
		txCountryRepo.EXPECT().FindByName(ctx, "Peru").Return(nil, repository.ErrCountryNotFound).Once()
		txCountryRepo.EXPECT().FindByName(ctx, "Japan").Return(&entity.Country{Name: "Japan"}, nil).Once()
		txCountryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Country")).Return(nil).Times(2)
		fx.txManager.EXPECT().Execute(ctx, anyTxFunc).RunAndReturn(runTx(mockFactory))

		fx.cache.EXPECT().Invalidate(ctx).Return(nil)
		fx.metrics.EXPECT().CountriesAdded(2).Return()
		fx.publisher.EXPECT().
			PublishContactEvent(ctx, mock.MatchedBy(func(e *service.ContactEvent) bool {
				return e.Type == service.EventCountriesUploaded && e.Payload["count"] == "2"
			})).
			Return(nil)

		n, err := fx.service.UploadCountriesFromExcel(ctx, file)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("nothing new", func(t *testing.T) {
		fx := createCountriesServiceFixtures(t)
		fx.reader.EXPECT().ReadColumn(file, CountriesSheet, 0, 2).Return([]string{"", ""}, nil)

		mockFactory := mockRepo.NewMockRepositoryFactory(t)
		mockFactory.EXPECT().NewCountryRepository().Return(mockRepo.NewMockCountryRepository(t))
		fx.txManager.EXPECT().Execute(ctx, anyTxFunc).RunAndReturn(runTx(mockFactory))

		n, err := fx.service.UploadCountriesFromExcel(ctx, file)

		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
