package impl

import (
	"testing"
	"time"

	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func names(persons []*usecase.PersonResponse) []string {
	out := make([]string, 0, len(persons))
	for _, p := range persons {
		out = append(out, p.PersonName)
	}

	return out
}

func TestPersonsSorterService_GetSortedPersons(t *testing.T) {
	persons := []*usecase.PersonResponse{
		{PersonID: uuid.New(), PersonName: "charlie", Email: "c@x.io", DateOfBirth: date(1980, time.May, 1), Age: ptr("44 years"), ReceiveNewsLetters: true},
		{PersonID: uuid.New(), PersonName: "Alice", Email: "a@x.io", ReceiveNewsLetters: false},
		{PersonID: uuid.New(), PersonName: "bob", Email: "b@x.io", DateOfBirth: date(1995, time.January, 2), Age: ptr("29 years"), ReceiveNewsLetters: true},
	}
	sorter := NewPersonsSorterService()

	tests := []struct {
		name   string
		sortBy string
		order  usecase.SortOrder
		want   []string
	}{
		{name: "empty field keeps order", sortBy: "", order: usecase.SortOrderAsc, want: []string{"charlie", "Alice", "bob"}},
		{name: "unknown field keeps order", sortBy: "Shoe", order: usecase.SortOrderAsc, want: []string{"charlie", "Alice", "bob"}},
		{name: "name ignores case", sortBy: "PersonName", order: usecase.SortOrderAsc, want: []string{"Alice", "bob", "charlie"}},
		{name: "name descending", sortBy: "personname", order: usecase.SortOrderDesc, want: []string{"charlie", "bob", "Alice"}},
		{name: "json name", sortBy: "email", order: usecase.SortOrderDesc, want: []string{"charlie", "bob", "Alice"}},
		{name: "nil date first", sortBy: "DateOfBirth", order: usecase.SortOrderAsc, want: []string{"Alice", "charlie", "bob"}},
		{name: "nil age sorts as empty", sortBy: "Age", order: usecase.SortOrderAsc, want: []string{"Alice", "bob", "charlie"}},
		{name: "bool is stable", sortBy: "receive_news_letters", order: usecase.SortOrderAsc, want: []string{"Alice", "charlie", "bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sorter.GetSortedPersons(persons, tt.sortBy, tt.order)

			assert.Equal(t, tt.want, names(got))
		})
	}

	assert.Equal(t, []string{"charlie", "Alice", "bob"}, names(persons), "input must not be reordered")
}
