package impl

import (
	"cmp"
	"reflect"
	"slices"
	"strings"
	"time"

	"contacts/internal/usecase"

	"github.com/google/uuid"
)

type personsSorterService struct{}

// NewPersonsSorterService is the constructor for the PersonsSorter.
func NewPersonsSorterService() usecase.PersonsSorter {
	return &personsSorterService{}
}

// GetSortedPersons orders persons by the named PersonResponse field. The
// field is matched case-insensitively against the Go name or the JSON name.
// An empty or unknown field returns the list unchanged. The sort is stable.
func (srv *personsSorterService) GetSortedPersons(persons []*usecase.PersonResponse, sortBy string, order usecase.SortOrder) []*usecase.PersonResponse {
	index, ok := personResponseField(sortBy)
	if !ok {
		return persons
	}

	sorted := slices.Clone(persons)
	slices.SortStableFunc(sorted, func(a, b *usecase.PersonResponse) int {
		c := compareValues(fieldOf(a, index), fieldOf(b, index))
		if order == usecase.SortOrderDesc {
			return -c
		}

		return c
	})

	return sorted
}

var personResponseType = reflect.TypeOf(usecase.PersonResponse{})

func personResponseField(name string) ([]int, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}

	for i := range personResponseType.NumField() {
		f := personResponseType.Field(i)
		jsonName, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if strings.EqualFold(f.Name, name) || (jsonName != "" && strings.EqualFold(jsonName, name)) {
			return f.Index, true
		}
	}

	return nil, false
}

func fieldOf(p *usecase.PersonResponse, index []int) reflect.Value {
	if p == nil {
		return reflect.Value{}
	}

	return reflect.ValueOf(p).Elem().FieldByIndex(index)
}

// compareValues orders nil pointers like zero values, so a missing string
// sorts as "".
func compareValues(a, b reflect.Value) int {
	a, b = deref(a), deref(b)
	if !a.IsValid() || !b.IsValid() {
		return boolCompare(a.IsValid(), b.IsValid())
	}

	switch av := a.Interface().(type) {
	case time.Time:
		return av.Compare(b.Interface().(time.Time))
	case uuid.UUID:
		bv := b.Interface().(uuid.UUID)
		return strings.Compare(av.String(), bv.String())
	}

	switch a.Kind() {
	case reflect.String:
		return strings.Compare(strings.ToLower(a.String()), strings.ToLower(b.String()))
	case reflect.Bool:
		return boolCompare(a.Bool(), b.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	default:
		return 0
	}
}

// deref follows pointers. A nil *string becomes "" and other nil pointers
// become the invalid Value, which sorts first.
func deref(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Pointer {
		if v.IsNil() {
			if v.Type().Elem().Kind() == reflect.String {
				return reflect.ValueOf("")
			}

			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
