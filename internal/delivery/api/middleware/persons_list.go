package middleware

import (
	"contacts/internal/domain/entity"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
)

const personsListQueryKey = "persons_list_query"

// SearchField is one option of the person search selector.
type SearchField struct {
	Field entity.PersonField `json:"field"`
	Label string             `json:"label"`
}

// PersonsListQuery is the normalised search and sort state of a person list.
type PersonsListQuery struct {
	SearchBy     entity.PersonField `json:"search_by"`
	SearchValue  string             `json:"search_value"`
	SortBy       string             `json:"sort_by"`
	SortOrder    usecase.SortOrder  `json:"sort_order"`
	SearchFields []SearchField      `json:"search_fields"`
}

// PersonsListParams reads searchBy, searchValue, sortBy and sortOrder.
// An unknown searchBy falls back to PersonName and an unknown sortOrder to ASC.
func PersonsListParams(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var searchBy, searchValue, sortBy, sortOrder string
		if err := echo.QueryParamsBinder(c).
			String("searchBy", &searchBy).
			String("searchValue", &searchValue).
			String("sortBy", &sortBy).
			String("sortOrder", &sortOrder).
			BindError(); err != nil {
			return err
		}

		query := PersonsListQuery{
			SearchBy:     entity.PersonFieldName,
			SearchValue:  searchValue,
			SortBy:       string(entity.PersonFieldName),
			SortOrder:    usecase.SortOrderAsc,
			SearchFields: searchFields(),
		}
		if field, ok := entity.ParsePersonField(searchBy); ok {
			query.SearchBy = field
		}
		if sortBy != "" {
			query.SortBy = sortBy
		}
		if order, ok := usecase.ParseSortOrder(sortOrder); ok {
			query.SortOrder = order
		}

		c.Set(personsListQueryKey, query)

		return next(c)
	}
}

// GetPersonsListQuery returns the query stored by PersonsListParams, or the defaults.
func GetPersonsListQuery(c echo.Context) PersonsListQuery {
	if q, ok := c.Get(personsListQueryKey).(PersonsListQuery); ok {
		return q
	}

	return PersonsListQuery{
		SearchBy:     entity.PersonFieldName,
		SortBy:       string(entity.PersonFieldName),
		SortOrder:    usecase.SortOrderAsc,
		SearchFields: searchFields(),
	}
}

func searchFields() []SearchField {
	fields := make([]SearchField, 0, len(entity.SearchablePersonFields))
	for _, f := range entity.SearchablePersonFields {
		fields = append(fields, SearchField{Field: f, Label: f.Label()})
	}

	return fields
}
