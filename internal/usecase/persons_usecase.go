package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PersonsAdder adds persons.
type PersonsAdder interface {
	AddPerson(ctx context.Context, req *PersonAddRequest) (*PersonResponse, error)
}

// PersonsGetter reads persons and renders them as reports.
type PersonsGetter interface {
	GetAllPersons(ctx context.Context) ([]*PersonResponse, error)

	// GetPersonByID returns nil without an error when id is nil or unknown.
	GetPersonByID(ctx context.Context, id *uuid.UUID) (*PersonResponse, error)

	// GetFilteredPersons matches searchValue against the searchBy field, ignoring case.
	// An empty value or an unsupported field returns every person.
	GetFilteredPersons(ctx context.Context, searchBy, searchValue string) ([]*PersonResponse, error)

	GetPersonsCSV(ctx context.Context) ([]byte, error)
	GetPersonsExcel(ctx context.Context, columns ExcelColumns) ([]byte, error)
	GetPersonsPDF(ctx context.Context) ([]byte, error)

	// GetPersonQRCode returns a PNG QR code holding the person's vCard.
	GetPersonQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}

// PersonsUpdater edits persons.
type PersonsUpdater interface {
	UpdatePerson(ctx context.Context, req *PersonUpdateRequest) (*PersonResponse, error)
}

// PersonsDeleter deletes persons.
type PersonsDeleter interface {
	// DeletePerson reports false when no person has the id.
	DeletePerson(ctx context.Context, id *uuid.UUID) (bool, error)
}

// PersonsSorter orders person lists in memory.
type PersonsSorter interface {
	// GetSortedPersons sorts by the named field. An empty or unknown field
	// returns the list unchanged.
	GetSortedPersons(persons []*PersonResponse, sortBy string, order SortOrder) []*PersonResponse
}
