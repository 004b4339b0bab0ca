package handler

import (
	"context"
	"net/http"
	"testing"

	apimiddleware "contacts/internal/delivery/api/middleware"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/errors"
	mockUsecase "contacts/internal/mocks/usecase"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type personsHandlerFixtures struct {
	adder     *mockUsecase.MockPersonsAdder
	getter    *mockUsecase.MockPersonsGetter
	updater   *mockUsecase.MockPersonsUpdater
	deleter   *mockUsecase.MockPersonsDeleter
	sorter    *mockUsecase.MockPersonsSorter
	countries *mockUsecase.MockCountriesUsecase
}

func createTestPersonsHandler(t *testing.T) (*PersonsHandler, *personsHandlerFixtures) {
	fx := &personsHandlerFixtures{
		adder:     mockUsecase.NewMockPersonsAdder(t),
		getter:    mockUsecase.NewMockPersonsGetter(t),
		updater:   mockUsecase.NewMockPersonsUpdater(t),
		deleter:   mockUsecase.NewMockPersonsDeleter(t),
		sorter:    mockUsecase.NewMockPersonsSorter(t),
		countries: mockUsecase.NewMockCountriesUsecase(t),
	}

	h := NewPersonsHandler(PersonsHandlerParams{
		Adder:     fx.adder,
		Getter:    fx.getter,
		Updater:   fx.updater,
		Deleter:   fx.deleter,
		Sorter:    fx.sorter,
		Countries: fx.countries,
		Logger:    testLogger(),
	})

	return h, fx
}

func TestPersonsHandler_List(t *testing.T) {
	h, fx := createTestPersonsHandler(t)
	persons := []*usecase.PersonResponse{{PersonID: uuid.New(), PersonName: "Ann"}}

	c, rec := newJSONContext(http.MethodGet, "/persons?searchBy=Email&searchValue=ann&sortOrder=DESC", "")
	fx.getter.EXPECT().GetFilteredPersons(mock.Anything, "Email", "ann").Return(persons, nil)
	fx.sorter.EXPECT().GetSortedPersons(persons, "PersonName", usecase.SortOrderDesc).Return(persons)

	err := apimiddleware.PersonsListParams(h.List)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[PersonsListResponse](t, rec)
	require.Len(t, got.Persons, 1)
	assert.Equal(t, "Ann", got.Persons[0].PersonName)
	assert.Equal(t, "ann", got.Query.SearchValue)
	assert.Len(t, got.Query.SearchFields, 6)
}

func TestPersonsHandler_Get(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		h, fx := createTestPersonsHandler(t)
		c, rec := newJSONContext(http.MethodGet, "/persons/"+id.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		fx.getter.EXPECT().GetPersonByID(mock.Anything, &id).Return(&usecase.PersonResponse{PersonID: id}, nil)

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		h, fx := createTestPersonsHandler(t)
		c, _ := newJSONContext(http.MethodGet, "/persons/"+id.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		fx.getter.EXPECT().GetPersonByID(mock.Anything, &id).Return(nil, nil)

		assert.ErrorIs(t, h.Get(c), domainerrors.ErrPersonNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		h, _ := createTestPersonsHandler(t)
		c, _ := newJSONContext(http.MethodGet, "/persons/abc", "")
		c.SetParamNames("id")
		c.SetParamValues("abc")

		assert.ErrorIs(t, h.Get(c), domainerrors.ErrPersonNotFound)
	})
}

func TestPersonsHandler_Create(t *testing.T) {
	body := `{"person_name":"Ann","email":"ann@example.com","gender":"Female","receive_news_letters":true}`

	t.Run("created", func(t *testing.T) {
		h, fx := createTestPersonsHandler(t)
		c, rec := newJSONContext(http.MethodPost, "/persons", body)
		fx.adder.EXPECT().AddPerson(mock.Anything, mock.AnythingOfType("*usecase.PersonAddRequest")).
			RunAndReturn(func(_ context.Context, req *usecase.PersonAddRequest) (*usecase.PersonResponse, error) {
				assert.Equal(t, "Ann", req.PersonName)
				require.NotNil(t, req.ReceiveNewsLetters)
				assert.True(t, *req.ReceiveNewsLetters)

				return &usecase.PersonResponse{PersonID: uuid.New(), PersonName: req.PersonName}, nil
			})

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("validation failure lists countries", func(t *testing.T) {
		h, fx := createTestPersonsHandler(t)
		c, rec := newJSONContext(http.MethodPost, "/persons", body)
		vErr := domainerrors.NewValidationError(domainerrors.FieldError{Field: "email", Message: "Invalid Email Address"})
		fx.adder.EXPECT().AddPerson(mock.Anything, mock.Anything).Return(nil, errors.WithStack(vErr))
		fx.countries.EXPECT().GetAllCountries(mock.Anything).
			Return([]*usecase.CountryResponse{{CountryID: uuid.New(), CountryName: "India"}}, nil)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		got := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", got.Error.Code)
		details, ok := got.Error.Details.(map[string]any)
		require.True(t, ok)
		assert.Len(t, details["errors"], 1)
		assert.Len(t, details["countries"], 1)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := createTestPersonsHandler(t)
		c, rec := newJSONContext(http.MethodPost, "/persons", `{"person_name":`)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		h, fx := createTestPersonsHandler(t)
		c, _ := newJSONContext(http.MethodPost, "/persons", body)
		fx.adder.EXPECT().AddPerson(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCountryReference)

		assert.ErrorIs(t, h.Create(c), domainerrors.ErrInvalidCountryReference)
	})
}

func TestPersonsHandler_Update_PathIDWins(t *testing.T) {
	h, fx := createTestPersonsHandler(t)
	pathID := uuid.New()
	c, rec := newJSONContext(http.MethodPut, "/persons/"+pathID.String(),
		`{"person_id":"`+uuid.NewString()+`","person_name":"Ann","email":"ann@example.com","gender":"Female","receive_news_letters":false}`)
	c.SetParamNames("id")
	c.SetParamValues(pathID.String())

	fx.updater.EXPECT().UpdatePerson(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req *usecase.PersonUpdateRequest) (*usecase.PersonResponse, error) {
			assert.Equal(t, pathID, req.PersonID)

			return &usecase.PersonResponse{PersonID: req.PersonID}, nil
		})

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPersonsHandler_Delete(t *testing.T) {
	id := uuid.New()
	setup := func(t *testing.T) (*PersonsHandler, *personsHandlerFixtures, echo.Context) {
		h, fx := createTestPersonsHandler(t)
		c, _ := newJSONContext(http.MethodDelete, "/persons/"+id.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		return h, fx, c
	}

	t.Run("deleted", func(t *testing.T) {
		h, fx, c := setup(t)
		fx.deleter.EXPECT().DeletePerson(mock.Anything, &id).Return(true, nil)

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusNoContent, c.Response().Status)
	})

	t.Run("unknown", func(t *testing.T) {
		h, fx, c := setup(t)
		fx.deleter.EXPECT().DeletePerson(mock.Anything, &id).Return(false, nil)

		assert.ErrorIs(t, h.Delete(c), domainerrors.ErrPersonNotFound)
	})
}

func TestPersonsHandler_QRCode(t *testing.T) {
	h, fx := createTestPersonsHandler(t)
	id := uuid.New()
	c, rec := newJSONContext(http.MethodGet, "/persons/"+id.String()+"/qrcode", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	fx.getter.EXPECT().GetPersonQRCode(mock.Anything, id).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	require.NoError(t, h.QRCode(c))
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}

func TestPersonsHandler_EditForm(t *testing.T) {
	h, fx := createTestPersonsHandler(t)
	id := uuid.New()
	c, rec := newJSONContext(http.MethodGet, "/persons/"+id.String()+"/edit", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	fx.getter.EXPECT().GetPersonByID(mock.Anything, &id).
		Return(&usecase.PersonResponse{PersonID: id, PersonName: "Ann", Gender: "Female"}, nil)
	fx.countries.EXPECT().GetAllCountries(mock.Anything).Return([]*usecase.CountryResponse{}, nil)

	require.NoError(t, h.EditForm(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[PersonFormResponse](t, rec)
	require.NotNil(t, got.Person)
	assert.Equal(t, id, got.Person.PersonID)
	assert.Len(t, got.Genders, 3)
}
