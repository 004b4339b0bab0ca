// Package handler contains the HTTP handlers of the contacts API.
package handler

import (
	"log/slog"
	"net/http"

	apimiddleware "contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/response"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/errors"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PersonsListResponse is a person list with the search state that produced it.
type PersonsListResponse struct {
	Persons []*usecase.PersonResponse      `json:"persons"`
	Query   apimiddleware.PersonsListQuery `json:"query"`
}

// PersonFormResponse holds the options of the create and edit forms.
type PersonFormResponse struct {
	Person    *usecase.PersonUpdateRequest `json:"person,omitempty"`
	Countries []*usecase.CountryResponse   `json:"countries"`
	Genders   []entity.Gender              `json:"genders"`
}

// PersonsHandlerParams holds the persons use cases, injected by Fx.
type PersonsHandlerParams struct {
	fx.In

	Adder     usecase.PersonsAdder
	Getter    usecase.PersonsGetter
	Updater   usecase.PersonsUpdater
	Deleter   usecase.PersonsDeleter
	Sorter    usecase.PersonsSorter
	Countries usecase.CountriesUsecase
	Logger    *slog.Logger
}

// PersonsHandler serves the person CRUD routes.
type PersonsHandler struct {
	adder     usecase.PersonsAdder
	getter    usecase.PersonsGetter
	updater   usecase.PersonsUpdater
	deleter   usecase.PersonsDeleter
	sorter    usecase.PersonsSorter
	countries usecase.CountriesUsecase
	logger    *slog.Logger
}

// NewPersonsHandler is the constructor for PersonsHandler, injected by Fx.
func NewPersonsHandler(params PersonsHandlerParams) *PersonsHandler {
	return &PersonsHandler{
		adder:     params.Adder,
		getter:    params.Getter,
		updater:   params.Updater,
		deleter:   params.Deleter,
		sorter:    params.Sorter,
		countries: params.Countries,
		logger:    params.Logger,
	}
}

// List filters and sorts persons using the state read by PersonsListParams.
func (h *PersonsHandler) List(c echo.Context) error {
	query := apimiddleware.GetPersonsListQuery(c)
	ctx := c.Request().Context()

	persons, err := h.getter.GetFilteredPersons(ctx, string(query.SearchBy), query.SearchValue)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, PersonsListResponse{
		Persons: h.sorter.GetSortedPersons(persons, query.SortBy, query.SortOrder),
		Query:   query,
	})
}

// Get returns a single person.
func (h *PersonsHandler) Get(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return domainerrors.ErrPersonNotFound
	}

	person, err := h.getter.GetPersonByID(c.Request().Context(), &id)
	if err != nil {
		return errors.WithStack(err)
	}
	if person == nil {
		return domainerrors.ErrPersonNotFound
	}

	return response.Success(c, http.StatusOK, person)
}

// QRCode returns the person's vCard as a PNG QR code.
func (h *PersonsHandler) QRCode(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return domainerrors.ErrPersonNotFound
	}

	png, err := h.getter.GetPersonQRCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, response.MIMEPNG, png)
}

// NewForm returns the options needed to draw an empty create form.
func (h *PersonsHandler) NewForm(c echo.Context) error {
	countries, err := h.countries.GetAllCountries(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, PersonFormResponse{
		Countries: countries,
		Genders:   entity.Genders,
	})
}

// EditForm returns an existing person as an edit form.
func (h *PersonsHandler) EditForm(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return domainerrors.ErrPersonNotFound
	}

	ctx := c.Request().Context()
	person, err := h.getter.GetPersonByID(ctx, &id)
	if err != nil {
		return errors.WithStack(err)
	}
	if person == nil {
		return domainerrors.ErrPersonNotFound
	}

	countries, err := h.countries.GetAllCountries(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, PersonFormResponse{
		Person:    person.ToUpdateRequest(),
		Countries: countries,
		Genders:   entity.Genders,
	})
}

// Create adds a person.
func (h *PersonsHandler) Create(c echo.Context) error {
	var req usecase.PersonAddRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid person input")
	}

	person, err := h.adder.AddPerson(c.Request().Context(), &req)
	if err != nil {
		return h.formError(c, err)
	}

	return response.Success(c, http.StatusCreated, person)
}

// Update replaces a person. The path id wins over any id in the body.
func (h *PersonsHandler) Update(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return domainerrors.ErrInvalidPersonID
	}

	var req usecase.PersonUpdateRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid person input")
	}
	req.PersonID = id

	person, err := h.updater.UpdatePerson(c.Request().Context(), &req)
	if err != nil {
		return h.formError(c, err)
	}

	return response.Success(c, http.StatusOK, person)
}

// Delete removes a person.
func (h *PersonsHandler) Delete(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return domainerrors.ErrPersonNotFound
	}

	deleted, err := h.deleter.DeletePerson(c.Request().Context(), &id)
	if err != nil {
		return errors.WithStack(err)
	}
	if !deleted {
		return domainerrors.ErrPersonNotFound
	}

	return c.NoContent(http.StatusNoContent)
}

// formError answers a failed create or edit. Validation failures carry the
// country list so the client can redraw the form.
func (h *PersonsHandler) formError(c echo.Context, err error) error {
	var vErr *domainerrors.ValidationError
	if !errors.As(err, &vErr) {
		return errors.WithStack(err)
	}

	countries, cErr := h.countries.GetAllCountries(c.Request().Context())
	if cErr != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Failed to load countries for the person form", slog.Any("error", cErr))
	}

	return response.ValidationFailed(c, vErr, countries)
}

func pathUUID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}
