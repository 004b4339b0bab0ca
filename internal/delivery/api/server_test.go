package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"contacts/config"
	apimiddleware "contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/router"
	"contacts/internal/delivery/api/router/handler"
	"contacts/internal/domain/constants"
	"contacts/internal/domain/service"
	"contacts/internal/errors"
	"contacts/internal/infra/metrics"
	mockSvc "contacts/internal/mocks/service"
	mockUsecase "contacts/internal/mocks/usecase"
	"contacts/internal/usecase"
	"contacts/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	tokens    *mockSvc.MockTokenService
	getter    *mockUsecase.MockPersonsGetter
	sorter    *mockUsecase.MockPersonsSorter
	deleter   *mockUsecase.MockPersonsDeleter
	countries *mockUsecase.MockCountriesUsecase
}

func testServerConfig() *config.Config {
	cfg := &config.Config{
		ResponseHeaders: []config.HeaderConfig{{Key: "X-Custom-Key", Value: "contacts"}},
		RateLimit:       &config.RateLimitConfig{LoginPerSecond: 1, LoginBurst: 5, ExpiresIn: time.Minute},
		Auth:            &config.AuthConfig{},
	}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.MaxUploadBodySize = "2KB"

	return cfg
}

func newTestServer(t *testing.T) (*echo.Echo, *serverFixtures) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testServerConfig()
	fx := &serverFixtures{
		tokens:    mockSvc.NewMockTokenService(t),
		getter:    mockUsecase.NewMockPersonsGetter(t),
		sorter:    mockUsecase.NewMockPersonsSorter(t),
		deleter:   mockUsecase.NewMockPersonsDeleter(t),
		countries: mockUsecase.NewMockCountriesUsecase(t),
	}

	e := NewEcho(ServerParams{
		Cfg:       cfg,
		Logger:    logger,
		Metrics:   metrics.New(),
		Validator: validation.New(),
		RouterParams: router.RouterParams{
			PersonsHandler: handler.NewPersonsHandler(handler.PersonsHandlerParams{
				Adder:     mockUsecase.NewMockPersonsAdder(t),
				Getter:    fx.getter,
				Updater:   mockUsecase.NewMockPersonsUpdater(t),
				Deleter:   fx.deleter,
				Sorter:    fx.sorter,
				Countries: fx.countries,
				Logger:    logger,
			}),
			ReportsHandler:   handler.NewReportsHandler(fx.getter),
			CountriesHandler: handler.NewCountriesHandler(fx.countries),
			AccountHandler:   handler.NewAccountHandler(mockUsecase.NewMockAccountUsecase(t), cfg),
			AuthMiddleware:   apimiddleware.NewAuthMiddleware(fx.tokens),
			Metrics:          metrics.New(),
			Config:           cfg,
		},
	})

	return e, fx
}

func (f *serverFixtures) signIn(token string, roles ...string) {
	f.tokens.EXPECT().ValidateToken(token).Return(&service.Claims{
		UserID: uuid.New(),
		Roles:  roles,
		Type:   service.TokenTypeAccess,
	}, nil)
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	e, _ := newTestServer(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestServer_RequiresAuthentication(t *testing.T) {
	e, _ := newTestServer(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/persons", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestServer_PersonsIndexViaCookie(t *testing.T) {
	e, fx := newTestServer(t)
	fx.signIn("cookie-token", "User")
	persons := []*usecase.PersonResponse{{PersonID: uuid.New(), PersonName: "Ann"}}
	fx.getter.EXPECT().GetFilteredPersons(mock.Anything, "PersonName", "").Return(persons, nil)
	fx.sorter.EXPECT().GetSortedPersons(persons, "PersonName", usecase.SortOrderAsc).Return(persons)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: "cookie-token"})
	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "contacts", rec.Header().Get("X-Custom-Key"))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderLastModified))
	assert.Contains(t, rec.Body.String(), `"person_name":"Ann"`)
}

func TestServer_DeleteIsAdminOnly(t *testing.T) {
	id := uuid.New()

	t.Run("user is forbidden", func(t *testing.T) {
		e, fx := newTestServer(t)
		fx.signIn("user-token", "User")

		req := httptest.NewRequest(http.MethodDelete, "/persons/"+id.String(), nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer user-token")
		rec := serve(e, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin deletes", func(t *testing.T) {
		e, fx := newTestServer(t)
		fx.signIn("admin-token", "Admin")
		fx.deleter.EXPECT().DeletePerson(mock.Anything, &id).Return(true, nil)

		req := httptest.NewRequest(http.MethodDelete, "/persons/"+id.String(), nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer admin-token")
		rec := serve(e, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestServer_DomainErrorsRendered(t *testing.T) {
	e, fx := newTestServer(t)
	fx.signIn("tok", "User")
	id := uuid.New()
	fx.getter.EXPECT().GetPersonByID(mock.Anything, &id).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/persons/"+id.String(), nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	rec := serve(e, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PERSON_NOT_FOUND")
}

func TestServer_InternalErrorsHidden(t *testing.T) {
	e, fx := newTestServer(t)
	fx.signIn("tok", "User")
	fx.countries.EXPECT().GetAllCountries(mock.Anything).Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/countries", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	rec := serve(e, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestServer_BodyLimit(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/persons", strings.NewReader(`{"person_name":"`+strings.Repeat("a", 2048)+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	rec := serve(e, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
