package handler

import (
	"net/http"
	"testing"

	"contacts/internal/delivery/api/response"
	mockUsecase "contacts/internal/mocks/usecase"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportsHandler(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		setup       func(m *mockUsecase.MockPersonsGetter)
		serve       func(h *ReportsHandler, c echo.Context) error
		contentType string
		filename    string
	}{
		{
			name:   "csv",
			target: "/persons/reports/csv",
			setup: func(m *mockUsecase.MockPersonsGetter) {
				m.EXPECT().GetPersonsCSV(mock.Anything).Return([]byte("data"), nil)
			},
			serve:       (*ReportsHandler).CSV,
			contentType: response.MIMETextCSV,
			filename:    "PersonsReport.csv",
		},
		{
			name:   "reduced excel",
			target: "/persons/reports/excel?columns=reduced",
			setup: func(m *mockUsecase.MockPersonsGetter) {
				m.EXPECT().GetPersonsExcel(mock.Anything, usecase.ExcelColumnsReduced).Return([]byte("data"), nil)
			},
			serve:       (*ReportsHandler).Excel,
			contentType: response.MIMEXLSX,
			filename:    "PersonsReport.xlsx",
		},
		{
			name:   "pdf",
			target: "/persons/reports/pdf",
			setup: func(m *mockUsecase.MockPersonsGetter) {
				m.EXPECT().GetPersonsPDF(mock.Anything).Return([]byte("data"), nil)
			},
			serve:       (*ReportsHandler).PDF,
			contentType: response.MIMEPDF,
			filename:    "PersonsReport.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getter := mockUsecase.NewMockPersonsGetter(t)
			tt.setup(getter)
			h := NewReportsHandler(getter)
			c, rec := newJSONContext(http.MethodGet, tt.target, "")

			require.NoError(t, tt.serve(h, c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get(echo.HeaderContentType))
			assert.Equal(t, `attachment; filename=`+tt.filename, rec.Header().Get(echo.HeaderContentDisposition))
			assert.Equal(t, "data", rec.Body.String())
		})
	}
}
