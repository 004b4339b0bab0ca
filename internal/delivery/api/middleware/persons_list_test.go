package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contacts/config"
	"contacts/internal/domain/entity"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runPersonsList(t *testing.T, target string) PersonsListQuery {
	t.Helper()

	c, _ := newAuthContext(httptest.NewRequest(http.MethodGet, target, nil))
	var got PersonsListQuery
	err := PersonsListParams(func(c echo.Context) error {
		got = GetPersonsListQuery(c)

		return nil
	})(c)
	require.NoError(t, err)

	return got
}

func TestPersonsListParams(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		searchBy  entity.PersonField
		value     string
		sortBy    string
		sortOrder usecase.SortOrder
	}{
		{
			name:      "defaults",
			target:    "/persons",
			searchBy:  entity.PersonFieldName,
			sortBy:    "PersonName",
			sortOrder: usecase.SortOrderAsc,
		},
		{
			name:      "valid values",
			target:    "/persons?searchBy=email&searchValue=ann&sortBy=Age&sortOrder=desc",
			searchBy:  entity.PersonFieldEmail,
			value:     "ann",
			sortBy:    "Age",
			sortOrder: usecase.SortOrderDesc,
		},
		{
			name:      "unknown search field and order reset",
			target:    "/persons?searchBy=PIN&searchValue=1234&sortOrder=sideways",
			searchBy:  entity.PersonFieldName,
			value:     "1234",
			sortBy:    "PersonName",
			sortOrder: usecase.SortOrderAsc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runPersonsList(t, tt.target)

			assert.Equal(t, tt.searchBy, got.SearchBy)
			assert.Equal(t, tt.value, got.SearchValue)
			assert.Equal(t, tt.sortBy, got.SortBy)
			assert.Equal(t, tt.sortOrder, got.SortOrder)
		})
	}
}

func TestPersonsListParams_SearchFields(t *testing.T) {
	got := runPersonsList(t, "/persons")

	require.Len(t, got.SearchFields, 6)
	assert.Equal(t, SearchField{Field: entity.PersonFieldName, Label: "Person Name"}, got.SearchFields[0])
	assert.Equal(t, SearchField{Field: entity.PersonFieldDateOfBirth, Label: "Date of Birth"}, got.SearchFields[2])
	assert.Equal(t, SearchField{Field: entity.PersonFieldCountry, Label: "Country"}, got.SearchFields[4])
}

func TestGetPersonsListQuery_WithoutMiddleware(t *testing.T) {
	c, _ := newAuthContext(httptest.NewRequest(http.MethodGet, "/", nil))

	got := GetPersonsListQuery(c)
	assert.Equal(t, entity.PersonFieldName, got.SearchBy)
	assert.Equal(t, usecase.SortOrderAsc, got.SortOrder)
}

func TestResponseHeaders(t *testing.T) {
	c, rec := newAuthContext(httptest.NewRequest(http.MethodGet, "/persons", nil))
	headers := []config.HeaderConfig{
		{Key: "X-Custom-Key", Value: "Custom-Value"},
		{Key: "", Value: "ignored"},
		{Key: "X-Controller", Value: "Persons"},
	}

	require.NoError(t, ResponseHeaders(headers)(okHandler)(c))
	assert.Equal(t, "Custom-Value", rec.Header().Get("X-Custom-Key"))
	assert.Equal(t, "Persons", rec.Header().Get("X-Controller"))
}

func TestLastModified(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	c, rec := newAuthContext(httptest.NewRequest(http.MethodGet, "/persons", nil))

	require.NoError(t, LastModified(func() time.Time { return now })(okHandler)(c))
	assert.Equal(t, "Sat, 15 Jun 2024 12:00:00 GMT", rec.Header().Get(echo.HeaderLastModified))
}
