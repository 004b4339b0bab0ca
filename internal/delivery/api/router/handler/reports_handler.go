package handler

import (
	"contacts/internal/delivery/api/response"
	"contacts/internal/domain/constants"
	"contacts/internal/errors"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReportsHandler serves the persons report downloads.
type ReportsHandler struct {
	getter usecase.PersonsGetter
}

// NewReportsHandler is the constructor for ReportsHandler, injected by Fx.
func NewReportsHandler(getter usecase.PersonsGetter) *ReportsHandler {
	return &ReportsHandler{getter: getter}
}

// CSV downloads every person as PersonsReport.csv.
func (h *ReportsHandler) CSV(c echo.Context) error {
	data, err := h.getter.GetPersonsCSV(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Attachment(c, response.MIMETextCSV, constants.PersonsReportCSV, data)
}

// Excel downloads PersonsReport.xlsx. columns=reduced limits the sheet to
// name, email, date of birth and age.
func (h *ReportsHandler) Excel(c echo.Context) error {
	columns := usecase.ParseExcelColumns(c.QueryParam("columns"))

	data, err := h.getter.GetPersonsExcel(c.Request().Context(), columns)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Attachment(c, response.MIMEXLSX, constants.PersonsReportExcel, data)
}

// PDF downloads PersonsReport.pdf.
func (h *ReportsHandler) PDF(c echo.Context) error {
	data, err := h.getter.GetPersonsPDF(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Attachment(c, response.MIMEPDF, constants.PersonsReportPDF, data)
}
