package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"contacts/internal/delivery/api/response"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/errors"
	"contacts/internal/usecase"
	"contacts/internal/util"

	"github.com/labstack/echo/v4"
)

// CountriesUploadField is the multipart field carrying the workbook.
const CountriesUploadField = "excelFile"

// CountriesUploadResponse reports the outcome of a workbook upload.
type CountriesUploadResponse struct {
	Inserted int    `json:"inserted"`
	Message  string `json:"message"`
	FileName string `json:"file_name"`
	FileSize string `json:"file_size"`
}

// CountriesHandler serves the country catalogue.
type CountriesHandler struct {
	uc usecase.CountriesUsecase
}

// NewCountriesHandler is the constructor for CountriesHandler, injected by Fx.
func NewCountriesHandler(uc usecase.CountriesUsecase) *CountriesHandler {
	return &CountriesHandler{uc: uc}
}

// List returns every country ordered by name.
func (h *CountriesHandler) List(c echo.Context) error {
	countries, err := h.uc.GetAllCountries(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, countries)
}

// Get returns a single country.
func (h *CountriesHandler) Get(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return domainerrors.ErrCountryNotFound
	}

	country, err := h.uc.GetCountryByID(c.Request().Context(), &id)
	if err != nil {
		return errors.WithStack(err)
	}
	if country == nil {
		return domainerrors.ErrCountryNotFound
	}

	return response.Success(c, http.StatusOK, country)
}

// Create adds a country.
func (h *CountriesHandler) Create(c echo.Context) error {
	var req usecase.CountryAddRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid country input")
	}

	country, err := h.uc.AddCountry(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, country)
}

// Upload imports the names of the "Countries" worksheet of an .xlsx file.
func (h *CountriesHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile(CountriesUploadField)
	if err != nil || fileHeader.Size == 0 {
		return domainerrors.ErrInvalidSpreadsheet
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
		return domainerrors.ErrUnsupportedSpreadsheet
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	inserted, err := h.uc.UploadCountriesFromExcel(c.Request().Context(), file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, CountriesUploadResponse{
		Inserted: inserted,
		Message:  fmt.Sprintf("%d Countries Uploaded", inserted),
		FileName: fileHeader.Filename,
		FileSize: util.FormatBytes(fileHeader.Size),
	})
}
